package backendtest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/onboarding/pkg/logger"
)

var errBadToken = errors.New("bearer token missing or invalid")

type Middleware struct {
	token string
}

// NewMiddleware returns middlewares for the fake admin API. An empty token disables auth.
func NewMiddleware(token string) *Middleware {
	return &Middleware{token: token}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		ctx = logger.WithRequestID(ctx, requestID)
		w.Header().Set("X-Request-Id", requestID)

		reqBody, err := io.ReadAll(r.Body)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "read request body")
			return
		}

		r.Body.Close()
		r.Body = io.NopCloser(bytes.NewBuffer(reqBody))

		var headers strings.Builder

		for k, v := range r.Header {
			if k == "Authorization" || k == "Cookie" {
				continue
			}

			headers.WriteString(fmt.Sprintf("%s: %s,\n", k, v))
		}

		slog.DebugContext(ctx, "incoming request",
			"request", fmt.Sprintf("%s %s\n%s", r.Method, r.URL.Redacted(), reqBody),
			"headers", headers.String(),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "recovered from panic", "error", err, "stack", string(debug.Stack()))
				SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", err), "internal error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// BearerAuth compares the bearer token with the configured one.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.token == "" {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token != m.token {
			SendJSONErr(r.Context(), w, http.StatusUnauthorized, errBadToken, "unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}
