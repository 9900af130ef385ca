package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, 10*time.Minute, cfg.JWTAccessTTL)
	require.Equal(t, 24*time.Hour, cfg.JWTRefreshTTL)
	require.Equal(t, time.Hour, cfg.ConfirmationCodeTTL)
	require.True(t, cfg.CookieSecure)
	require.True(t, cfg.TestingEndpoints)
	require.Equal(t, BackendMemory, cfg.RateLimitBackend)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())

	strict := cfg.StrictLimit()
	require.Equal(t, 5, strict.RequestsPerWindow)
	require.Equal(t, 10*time.Second, strict.Window)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "30s")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "2")
	t.Setenv("RATELIMIT_STRICT_WINDOW_SEC", "60")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.JWTAccessTTL)
	require.False(t, cfg.CookieSecure)
	require.Equal(t, 2, cfg.StrictLimit().RequestsPerWindow)
	require.Equal(t, time.Minute, cfg.StrictLimit().Window)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoadConfigProd(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "missing secrets",
			env:     map[string]string{},
			wantErr: "must be set when ENV=prod",
		},
		{
			name:    "identical secrets",
			env:     map[string]string{"JWT_ACCESS_SECRET": "same", "JWT_REFRESH_SECRET": "same"},
			wantErr: "must differ",
		},
		{
			name: "testing endpoints forced on",
			env: map[string]string{
				"JWT_ACCESS_SECRET":  "a",
				"JWT_REFRESH_SECRET": "b",
				"TESTING_ENDPOINTS":  "true",
			},
			wantErr: "TESTING_ENDPOINTS",
		},
		{
			name: "valid",
			env:  map[string]string{"JWT_ACCESS_SECRET": "a", "JWT_REFRESH_SECRET": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("ENV", "prod")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.False(t, cfg.TestingEndpoints)
		})
	}
}

func TestLoadConfigRejectsBadBackend(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("RATE_LIMIT_BACKEND", "redis")
	_, err := LoadConfig()
	require.ErrorContains(t, err, "REDIS_URL")

	t.Setenv("RATE_LIMIT_BACKEND", "memcached")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "memory or redis")
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, ".env", "PORT=7070\nADMIN_LOGIN=root\n")
	t.Setenv("ADMIN_LOGIN", "override")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 7070, cfg.Port)
	require.Equal(t, "override", cfg.AdminLogin)
}

func TestLoadConfigRejectsWildcardOrigin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example, *")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "CORS_ALLOWED_ORIGINS")
}

func TestLoadConfigTrustedProxies(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 127.0.0.1")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	_, err = cfg.Proxies()
	require.NoError(t, err)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, proxy.internal")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "TRUSTED_PROXIES")
}
