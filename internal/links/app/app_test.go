package app

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/links/pkg/linksdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	return Config{
		Database:            filepath.Join(dir, "links.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		Env:                 "test",
		LogLevel:            "debug",
		LogFormat:           "text",
		Port:                0,
		ShutdownGracePeriod: time.Second,
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"LINKS_DATABASE", "LINKS_PORT", "LINKS_PEPPER_FILE", "SHUTDOWN_GRACE_PERIOD"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "links.db", cfg.Database)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LINKS_DATABASE", "postgres://u:p@db/links")
	t.Setenv("LINKS_PORT", "8081")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30")
	t.Setenv("LOG_FORMAT", "text")

	cfg := LoadConfig()
	require.Equal(t, "postgres://u:p@db/links", cfg.Database)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, "text", cfg.LogFormat)

	t.Setenv("LINKS_PORT", "not-a-port")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "2m")
	cfg = LoadConfig()
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, 2*time.Minute, cfg.ShutdownGracePeriod)
}

func TestApplicationEndToEnd(t *testing.T) {
	var logs bytes.Buffer
	app, err := New(testConfig(t), &logs)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	_, err = app.Users().AddUser(t.Context(), "alice", "secret")
	require.NoError(t, err)

	srv := httptest.NewServer(app.Handler())
	t.Cleanup(srv.Close)

	c := linksdk.NewClient(srv.URL, "alice", "secret")
	_, err = c.Create(t.Context(), "blog", "https://example.com")
	require.NoError(t, err)

	target, err := c.Resolve(t.Context(), "blog")
	require.NoError(t, err)
	require.Equal(t, "https://example.com", target)

	require.Contains(t, logs.String(), "http_request")
}

func TestRunStopsOnContextCancel(t *testing.T) {
	app, err := New(testConfig(t), &bytes.Buffer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	// The database is closed after shutdown.
	_, err = app.Users().ListUsers(t.Context())
	require.Error(t, err)
}

func TestNewFailsOnBadDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database = filepath.Join(t.TempDir(), "missing-dir", "links.db")

	_, err := New(cfg, &bytes.Buffer{})
	require.Error(t, err)
}
