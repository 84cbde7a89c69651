package transport

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/onboarding/pkg/logger"
)

// RoundTripper logs outgoing requests, forwards the request id and, when configured,
// authenticates with a static bearer token.
type RoundTripper struct {
	Transport http.RoundTripper
	Token     string
}

func NewRoundTripper(transport http.RoundTripper, token string) *RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &RoundTripper{Transport: transport, Token: token}
}

func (t *RoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	// A RoundTripper must not modify the caller's request.
	r = r.Clone(ctx)

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID != "" {
		r.Header.Set("X-Request-Id", reqID)
	}

	if t.Token != "" && r.Header.Get("Authorization") == "" {
		r.Header.Set("Authorization", "Bearer "+t.Token)
	}

	slog.InfoContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := t.Transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.InfoContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()),
		"status", resp.StatusCode,
	)

	return resp, nil
}
