package backendtest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/samandr77/microservices/onboarding/internal/entity"
)

var errInjected = errors.New("injected failure")

// Handler serves the two admin endpoints from a Store.
type Handler struct {
	store *Store

	mu sync.Mutex
	// failures holds the statuses answered before the store is consulted, one per request.
	failures []int
	legacy   bool
	queries  []entity.ListQuery
	saves    int
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// FailNext makes the following requests answer with the given statuses, in order.
func (h *Handler) FailNext(statuses ...int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.failures = append(h.failures, statuses...)
}

// Legacy switches list responses to a bare JSON array.
func (h *Handler) Legacy(on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.legacy = on
}

// Queries returns every list query received so far.
func (h *Handler) Queries() []entity.ListQuery {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]entity.ListQuery(nil), h.queries...)
}

func (h *Handler) Saves() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.saves
}

func (h *Handler) injected() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.failures) == 0 {
		return 0, false
	}

	code := h.failures[0]
	h.failures = h.failures[1:]

	return code, true
}

func (h *Handler) SaveApplicationDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if code, ok := h.injected(); ok {
		SendJSONErr(ctx, w, code, errInjected, http.StatusText(code))
		return
	}

	var app entity.Application

	err := json.NewDecoder(r.Body).Decode(&app)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid application")
		return
	}

	saved := h.store.Save(app)

	h.mu.Lock()
	h.saves++
	h.mu.Unlock()

	SendJSON(ctx, w, http.StatusOK, saved)
}

func (h *Handler) GetApplicationByAgentID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, err := parseListQuery(r)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "invalid query")
		return
	}

	h.mu.Lock()
	h.queries = append(h.queries, q)
	legacy := h.legacy
	h.mu.Unlock()

	if code, ok := h.injected(); ok {
		SendJSONErr(ctx, w, code, errInjected, http.StatusText(code))
		return
	}

	page := h.store.List(q.Page, q.Size, q.Search)

	if legacy {
		SendJSON(ctx, w, http.StatusOK, page.Items)
		return
	}

	SendJSON(ctx, w, http.StatusOK, map[string]any{
		"content":       page.Items,
		"totalPages":    page.TotalPages,
		"totalElements": page.TotalElements,
	})
}

func parseListQuery(r *http.Request) (entity.ListQuery, error) {
	values := r.URL.Query()

	page, err := strconv.Atoi(values.Get("page"))
	if err != nil {
		return entity.ListQuery{}, fmt.Errorf("page: %w", err)
	}

	size, err := strconv.Atoi(values.Get("size"))
	if err != nil {
		return entity.ListQuery{}, fmt.Errorf("size: %w", err)
	}

	q := entity.ListQuery{Page: page, Size: size, Search: values.Get("search")}

	err = q.Validate()
	if err != nil {
		return entity.ListQuery{}, err
	}

	return q, nil
}

// AdminScope rejects paths whose admin id is not a positive number.
func (h *Handler) AdminScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "adminID"))
		if err != nil || id <= 0 {
			SendJSONErr(r.Context(), w, http.StatusNotFound, fmt.Errorf("admin %q", chi.URLParam(r, "adminID")), "unknown admin")
			return
		}

		next.ServeHTTP(w, r)
	})
}
