package httpx_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startRedis(t *testing.T) *redis.Client {
	t.Helper()
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisWindowLimiter(t *testing.T) {
	client := startRedis(t)
	ctx := context.Background()

	cfg := httpx.RateLimitConfig{RequestsPerWindow: 3, Window: 2 * time.Second}
	limiter := httpx.NewRedisWindowLimiter(client, "test", cfg)
	require.NoError(t, limiter.Ping(ctx))

	t.Run("enforces the window quota", func(t *testing.T) {
		for i := range 3 {
			ok, _, err := limiter.Allow(ctx, "POST /auth/login|10.0.0.1")
			require.NoError(t, err)
			require.True(t, ok, "request %d should pass", i+1)
		}

		ok, retry, err := limiter.Allow(ctx, "POST /auth/login|10.0.0.1")
		require.NoError(t, err)
		require.False(t, ok)
		require.Greater(t, retry, time.Duration(0))
		require.LessOrEqual(t, retry, cfg.Window)
	})

	t.Run("instances share counters", func(t *testing.T) {
		other := httpx.NewRedisWindowLimiter(client, "test", cfg)
		for range 3 {
			ok, _, err := limiter.Allow(ctx, "shared")
			require.NoError(t, err)
			require.True(t, ok)
		}
		ok, _, err := other.Allow(ctx, "shared")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("window resets after expiry", func(t *testing.T) {
		for range 4 {
			_, _, err := limiter.Allow(ctx, "reset")
			require.NoError(t, err)
		}
		require.Eventually(t, func() bool {
			ok, _, err := limiter.Allow(ctx, "reset")
			return err == nil && ok
		}, 5*time.Second, 200*time.Millisecond)
	})
}
