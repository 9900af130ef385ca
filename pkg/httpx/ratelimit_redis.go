package httpx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisWindowLimiter is a fixed-window counter shared by every instance
// pointing at the same redis. The first hit in a window sets its expiry.
type RedisWindowLimiter struct {
	client *redis.Client
	prefix string
	cfg    RateLimitConfig
}

// NewRedisWindowLimiter returns a limiter storing counters under prefix.
func NewRedisWindowLimiter(client *redis.Client, prefix string, cfg RateLimitConfig) *RedisWindowLimiter {
	return &RedisWindowLimiter{client: client, prefix: prefix, cfg: cfg}
}

func (l *RedisWindowLimiter) Config() RateLimitConfig { return l.cfg }

func (l *RedisWindowLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := l.prefix + ":" + key

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.cfg.Window).Err(); err != nil {
			return false, 0, fmt.Errorf("ratelimit expire: %w", err)
		}
	}
	if n <= int64(l.cfg.RequestsPerWindow) {
		return true, 0, nil
	}

	ttl, err := l.client.PTTL(ctx, k).Result()
	if err != nil {
		return false, 0, fmt.Errorf("ratelimit ttl: %w", err)
	}
	if ttl < 0 {
		// Counter lost its expiry; repair it so the key cannot lock out forever.
		_ = l.client.Expire(ctx, k, l.cfg.Window).Err()
		ttl = l.cfg.Window
	}
	return false, ttl, nil
}

// Ping checks the redis connection.
func (l *RedisWindowLimiter) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}
