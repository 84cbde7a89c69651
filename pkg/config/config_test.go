package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/onboarding/pkg/config"
)

//nolint:paralleltest
func TestNew_Defaults(t *testing.T) {
	cfg, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	require.Equal(t, 1, cfg.API.AdminID)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, 0, cfg.API.RetryAttempts)
	require.Equal(t, 1027, cfg.Application.AgentID)
	require.Equal(t, "/documents/applications/", cfg.Application.DocPathPrefix)
	require.Equal(t, 10, cfg.List.PageSize)
	require.Equal(t, 500*time.Millisecond, cfg.List.SearchDebounce)
	require.Equal(t, "info", cfg.Logger.Level)
}

//nolint:paralleltest
func TestNew_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	err := os.WriteFile(path, []byte("ONBOARD_API_URL=http://api.test\nONBOARD_PAGE_SIZE=15\nONBOARD_SEARCH_DEBOUNCE=50ms\n"), 0o600)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = os.Unsetenv("ONBOARD_API_URL")
		_ = os.Unsetenv("ONBOARD_PAGE_SIZE")
		_ = os.Unsetenv("ONBOARD_SEARCH_DEBOUNCE")
	})

	cfg, err := config.New(path)
	require.NoError(t, err)

	require.Equal(t, "http://api.test", cfg.API.BaseURL)
	require.Equal(t, 15, cfg.List.PageSize)
	require.Equal(t, 50*time.Millisecond, cfg.List.SearchDebounce)
}

//nolint:paralleltest
func TestNew_InvalidPageSize(t *testing.T) {
	t.Setenv("ONBOARD_PAGE_SIZE", "0")

	_, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, config.ErrInvalidPageSize)
}
