package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))
}

func testConfig(t *testing.T) Config {
	t.Helper()
	t.Chdir(t.TempDir())
	cfg, err := LoadConfig()
	require.NoError(t, err)

	dir := t.TempDir()
	cfg.DatabaseFile = filepath.Join(dir, "bloggr.db")
	cfg.PepperFile = filepath.Join(dir, "secrets", "pepper")
	cfg.LogLevel = "error"
	cfg.JWTAccessSecret = "access"
	cfg.JWTRefreshSecret = "refresh"
	cfg.Port = 0
	return cfg
}

func TestApplicationServesAuthFlow(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.closeBackends() })

	require.FileExists(t, cfg.PepperFile)

	srv := httptest.NewTLSServer(app.Handler())
	t.Cleanup(srv.Close)

	ctx := context.Background()
	c, err := blogsdk.NewClient(srv.URL,
		blogsdk.WithTransport(srv.Client().Transport),
		blogsdk.WithAdmin(cfg.AdminLogin, cfg.AdminPassword),
	)
	require.NoError(t, err)

	_, err = c.CreateUser(ctx, blogsdk.CreateUserRequest{Login: "alice", Password: "secret123", Email: "alice@example.com"})
	require.NoError(t, err)

	_, err = c.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Login)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)
	require.Equal(t, BuildVersion, ready.Version)
}

func TestApplicationRejectsUnreachableRedis(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitBackend = BackendRedis
	cfg.RedisURL = "redis://127.0.0.1:1/0"

	_, err := New(cfg)
	require.ErrorContains(t, err, "redis")
}

func TestApplicationShutdown(t *testing.T) {
	cfg := testConfig(t)
	cfg.ShutdownGracePeriod = time.Second

	app, err := New(cfg)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.server.ListenAndServe() }()
	app.housekeepingService.Start()

	require.NoError(t, app.Shutdown())
	require.ErrorIs(t, <-done, http.ErrServerClosed)
}
