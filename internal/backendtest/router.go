package backendtest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/onboarding/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover)

	mux.Route("/api/admin/{adminID}", func(r chi.Router) {
		r.Use(mw.BearerAuth, h.AdminScope)
		r.Post("/saveApplicationDraft", h.SaveApplicationDraft)
		r.Get("/getApplicationByAgentId", h.GetApplicationByAgentID)
	})

	return mux
}

// Server is an in-memory admin API for tests.
type Server struct {
	*Handler

	URL   string
	Store *Store
}

// New starts a Server that is closed when the test ends. An empty token disables auth.
func New(t testing.TB, token string, apps ...entity.Application) *Server {
	t.Helper()

	store := NewStore(apps...)
	h := NewHandler(store)

	srv := httptest.NewServer(NewRouter(h, NewMiddleware(token)))
	t.Cleanup(srv.Close)

	return &Server{
		Handler: h,
		URL:     srv.URL,
		Store:   store,
	}
}
