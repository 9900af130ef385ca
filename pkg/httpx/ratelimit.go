package httpx

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/bloggr/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int `mapstructure:"REQUESTS"`
	// Window is the time window for rate limiting
	Window time.Duration `mapstructure:"WINDOW"`
	// Burst allows for temporary bursts above the rate limit (memory backend only)
	Burst int `mapstructure:"BURST"`
}

// Default profiles. Deployments override them through configuration.
var (
	// DefaultStrictLimit guards the credential and registration endpoints.
	DefaultStrictLimit = RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            10 * time.Second,
		Burst:             5,
	}

	// DefaultModerateLimit for authenticated writes.
	DefaultModerateLimit = RateLimitConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
		Burst:             20,
	}

	// DefaultLenientLimit for less sensitive operations.
	DefaultLenientLimit = RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		Burst:             100,
	}
)

// Valid reports whether the profile can be enforced.
func (c RateLimitConfig) Valid() bool {
	return c.RequestsPerWindow > 0 && c.Window > 0
}

// Limiter decides whether a request identified by key may proceed.
// When it refuses, retryAfter says how long the caller should wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
	Config() RateLimitConfig
}

// KeyExtractor is a function that extracts a unique key from the request
// for rate limiting purposes (e.g., IP address, user ID, route, etc.)
type KeyExtractor func(*http.Request) string

// Common key extractors

// IPKeyExtractor returns the client IP resolved by ClientIPMiddleware.
// Without it the TCP peer is used and forwarding headers are ignored.
func IPKeyExtractor(r *http.Request) string {
	if ip, ok := r.Context().Value(CtxKeyClientIP).(string); ok && ip != "" {
		return ip
	}
	return remoteIP(r)
}

// UserIDKeyExtractor extracts the user ID from the request context.
// Returns empty string if no user ID is found.
func UserIDKeyExtractor(r *http.Request) string {
	if userID, ok := UserIDFromContext(r.Context()); ok {
		return userID
	}
	return ""
}

// RouteKeyExtractor returns the matched mux pattern, or the path when the
// request did not go through a pattern match.
func RouteKeyExtractor(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return r.Method + " " + r.URL.Path
}

// CompositeKeyExtractor combines multiple key extractors with a separator.
// Example: CompositeKeyExtractor(":", IPKeyExtractor, UserIDKeyExtractor)
// would produce keys like "192.168.1.1:user123"
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extractor := range extractors {
			if key := extractor(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// MemoryLimiter is a process-local token bucket per key.
type MemoryLimiter struct {
	cfg      RateLimitConfig
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

// NewMemoryLimiter builds a token bucket limiter refilling at
// RequestsPerWindow/Window. Burst defaults to the window quota.
func NewMemoryLimiter(cfg RateLimitConfig) *MemoryLimiter {
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerWindow
	}
	return &MemoryLimiter{
		cfg:         cfg,
		rate:        rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:       cfg.Burst,
		lastCleanup: time.Now(),
	}
}

func (l *MemoryLimiter) Config() RateLimitConfig { return l.cfg }

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	limiter := l.getLimiter(key)
	if limiter.Allow() {
		return true, 0, nil
	}

	// Peek at when the next token lands without consuming it.
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()
	return false, delay, nil
}

// getLimiter retrieves or creates a rate limiter for the given key
func (l *MemoryLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := l.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(l.rate, l.burst)
	actual, _ := l.limiters.LoadOrStore(key, limiter)

	l.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops buckets that have refilled completely, i.e. keys that
// have been idle for at least a full window.
func (l *MemoryLimiter) maybeCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastCleanup) < 5*time.Minute {
		return
	}
	l.lastCleanup = time.Now()

	l.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware rejects requests the limiter refuses with 429.
// The keyExtractor determines how requests are grouped for rate limiting.
// Backend errors fail open.
func RateLimitMiddleware(limiter Limiter, keyExtractor KeyExtractor) Middleware {
	cfg := limiter.Config()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			allowed, delay, err := limiter.Allow(ctx, key)
			if err != nil {
				log.Error("rate limit backend failed, allowing request", "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if allowed {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int(delay.Round(time.Second).Seconds()), 1)

			w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			log.Warn("rate limit exceeded",
				"key", key,
				"endpoint", r.URL.Path,
				"retry_after", retryAfter,
			)

			WriteJSON(w, http.StatusTooManyRequests, map[string]any{
				"statusCode": http.StatusTooManyRequests,
				"timestamp":  time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
				"path":       r.URL.Path,
			})
		})
	}
}

// RateLimitByIP limits by client IP only.
func RateLimitByIP(limiter Limiter) Middleware {
	return RateLimitMiddleware(limiter, IPKeyExtractor)
}

// RateLimitByRouteAndIP gives every route its own window per client IP.
func RateLimitByRouteAndIP(limiter Limiter) Middleware {
	return RateLimitMiddleware(limiter, CompositeKeyExtractor("|",
		RouteKeyExtractor,
		IPKeyExtractor,
	))
}

// RateLimitByUser limits by authenticated user ID.
// Falls back to IP if no user is authenticated.
func RateLimitByUser(limiter Limiter) Middleware {
	return RateLimitMiddleware(limiter, CompositeKeyExtractor(":",
		UserIDKeyExtractor,
		IPKeyExtractor,
	))
}
