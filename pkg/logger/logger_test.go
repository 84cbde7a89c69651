package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/onboarding/pkg/logger"
)

//nolint:paralleltest
func TestNewWithWriter_AddsRequestID(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter("debug", buf)
	require.NoError(t, err)

	ctx := logger.WithRequestID(context.Background(), "req-1")
	l.With("component", "test").InfoContext(ctx, "hello")

	var line map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "hello", line["msg"])
	require.Equal(t, "req-1", line["request_id"])
	require.Equal(t, "test", line["component"])
}

//nolint:paralleltest
func TestNewWithWriter_InvalidLevel(t *testing.T) {
	_, err := logger.NewWithWriter("loud", new(bytes.Buffer))
	require.Error(t, err)
}

func TestWithNewRequestID(t *testing.T) {
	t.Parallel()

	ctx := logger.WithNewRequestID(context.Background())
	require.Len(t, logger.RequestIDFromCtx(ctx), 36)
	require.Empty(t, logger.RequestIDFromCtx(context.Background()))
}
