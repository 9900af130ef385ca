package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/spf13/viper"
)

// Rate limit backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Config is read once at startup by LoadConfig and passed by value.
type Config struct {
	Env                  string        `mapstructure:"ENV"`        // dev, staging, prod
	LogLevel             string        `mapstructure:"LOG_LEVEL"`  // debug, info, warn, error
	LogFormat            string        `mapstructure:"LOG_FORMAT"` // json, text
	Port                 int           `mapstructure:"PORT"`
	ShutdownGracePeriod  time.Duration `mapstructure:"SHUTDOWN_GRACE_PERIOD"`
	HousekeepingInterval time.Duration `mapstructure:"HOUSEKEEPING_INTERVAL"`

	DatabaseFile string `mapstructure:"DATABASE_FILE"`
	PepperFile   string `mapstructure:"PEPPER_FILE"`

	JWTAccessSecret  string        `mapstructure:"JWT_ACCESS_SECRET"`
	JWTRefreshSecret string        `mapstructure:"JWT_REFRESH_SECRET"`
	JWTAccessTTL     time.Duration `mapstructure:"JWT_ACCESS_TTL"`
	JWTRefreshTTL    time.Duration `mapstructure:"JWT_REFRESH_TTL"`
	JWTIssuer        string        `mapstructure:"JWT_ISSUER"`
	CookieSecure     bool          `mapstructure:"COOKIE_SECURE"`

	AdminLogin    string `mapstructure:"ADMIN_LOGIN"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	ConfirmationCodeTTL time.Duration `mapstructure:"CONFIRMATION_CODE_TTL"`
	ConfirmationURL     string        `mapstructure:"CONFIRMATION_URL"`
	RecoveryURL         string        `mapstructure:"RECOVERY_URL"`

	// Mail goes to the log when SMTPHost is empty.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUsername string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	RateLimitBackend string `mapstructure:"RATE_LIMIT_BACKEND"`
	RedisURL         string `mapstructure:"REDIS_URL"`

	StrictRequests    int `mapstructure:"RATELIMIT_STRICT_REQUESTS"`
	StrictWindowSec   int `mapstructure:"RATELIMIT_STRICT_WINDOW_SEC"`
	StrictBurst       int `mapstructure:"RATELIMIT_STRICT_BURST"`
	ModerateRequests  int `mapstructure:"RATELIMIT_MODERATE_REQUESTS"`
	ModerateWindowSec int `mapstructure:"RATELIMIT_MODERATE_WINDOW_SEC"`
	ModerateBurst     int `mapstructure:"RATELIMIT_MODERATE_BURST"`
	LenientRequests   int `mapstructure:"RATELIMIT_LENIENT_REQUESTS"`
	LenientWindowSec  int `mapstructure:"RATELIMIT_LENIENT_WINDOW_SEC"`
	LenientBurst      int `mapstructure:"RATELIMIT_LENIENT_BURST"`

	// Comma separated exact origins. The refresh cookie is sent with
	// credentials, which browsers refuse alongside a wildcard origin.
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Comma separated CIDRs or addresses of reverse proxies whose
	// X-Forwarded-For is believed. Empty means the TCP peer is the client.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// TestingEndpoints defaults to true outside prod.
	TestingEndpoints bool `mapstructure:"TESTING_ENDPOINTS"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("PORT", 8080)
	v.SetDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second)
	v.SetDefault("HOUSEKEEPING_INTERVAL", time.Hour)

	v.SetDefault("DATABASE_FILE", "bloggr.db")
	v.SetDefault("PEPPER_FILE", "pepper")

	v.SetDefault("JWT_ACCESS_SECRET", "")
	v.SetDefault("JWT_REFRESH_SECRET", "")
	v.SetDefault("JWT_ACCESS_TTL", 10*time.Minute)
	v.SetDefault("JWT_REFRESH_TTL", 24*time.Hour)
	v.SetDefault("JWT_ISSUER", "bloggr")
	v.SetDefault("COOKIE_SECURE", true)

	v.SetDefault("ADMIN_LOGIN", "admin")
	v.SetDefault("ADMIN_PASSWORD", "qwerty")

	v.SetDefault("CONFIRMATION_CODE_TTL", time.Hour)
	v.SetDefault("CONFIRMATION_URL", "http://localhost:3000/confirm-email")
	v.SetDefault("RECOVERY_URL", "http://localhost:3000/password-recovery")

	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USERNAME", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("SMTP_FROM", "bloggr <no-reply@bloggr.local>")

	v.SetDefault("RATE_LIMIT_BACKEND", BackendMemory)
	v.SetDefault("REDIS_URL", "")

	v.SetDefault("RATELIMIT_STRICT_REQUESTS", 5)
	v.SetDefault("RATELIMIT_STRICT_WINDOW_SEC", 10)
	v.SetDefault("RATELIMIT_STRICT_BURST", 5)
	v.SetDefault("RATELIMIT_MODERATE_REQUESTS", 30)
	v.SetDefault("RATELIMIT_MODERATE_WINDOW_SEC", 10)
	v.SetDefault("RATELIMIT_MODERATE_BURST", 30)
	v.SetDefault("RATELIMIT_LENIENT_REQUESTS", 100)
	v.SetDefault("RATELIMIT_LENIENT_WINDOW_SEC", 10)
	v.SetDefault("RATELIMIT_LENIENT_BURST", 100)

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("TRUSTED_PROXIES", "")
	v.SetDefault("TESTING_ENDPOINTS", "")
}

// LoadConfig reads .env (if present), then the environment, and validates
// the result. Environment variables override .env.
func LoadConfig() (Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // missing .env is fine

	v.AutomaticEnv()
	setDefaults(v)

	// An unset TESTING_ENDPOINTS follows the environment.
	if v.GetString("TESTING_ENDPOINTS") == "" {
		v.Set("TESTING_ENDPOINTS", v.GetString("ENV") != "prod")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.New("config: PORT must be between 1 and 65535")
	}
	if c.JWTAccessTTL <= 0 || c.JWTRefreshTTL <= 0 {
		return errors.New("config: JWT_ACCESS_TTL and JWT_REFRESH_TTL must be positive")
	}
	if c.ConfirmationCodeTTL <= 0 {
		return errors.New("config: CONFIRMATION_CODE_TTL must be positive")
	}
	if c.AdminLogin == "" || c.AdminPassword == "" {
		return errors.New("config: ADMIN_LOGIN and ADMIN_PASSWORD must be set")
	}

	switch c.RateLimitBackend {
	case BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("config: REDIS_URL must be set when RATE_LIMIT_BACKEND=redis")
		}
	default:
		return errors.New("config: RATE_LIMIT_BACKEND must be memory or redis")
	}

	if slices.Contains(c.AllowedOrigins(), "*") {
		return errors.New("config: CORS_ALLOWED_ORIGINS must list explicit origins, \"*\" cannot carry credentials")
	}

	if _, err := c.Proxies(); err != nil {
		return fmt.Errorf("config: TRUSTED_PROXIES: %w", err)
	}

	for _, p := range []httpx.RateLimitConfig{c.StrictLimit(), c.ModerateLimit(), c.LenientLimit()} {
		if !p.Valid() {
			return errors.New("config: rate limit requests and window must be positive")
		}
	}

	if c.IsProd() {
		if c.JWTAccessSecret == "" || c.JWTRefreshSecret == "" {
			return errors.New("config: JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must be set when ENV=prod")
		}
		if c.JWTAccessSecret == c.JWTRefreshSecret {
			return errors.New("config: JWT_ACCESS_SECRET and JWT_REFRESH_SECRET must differ")
		}
		if c.TestingEndpoints {
			return errors.New("config: TESTING_ENDPOINTS must not be true when ENV=prod")
		}
	}
	return nil
}

func (c Config) IsProd() bool { return c.Env == "prod" }

func (c Config) StrictLimit() httpx.RateLimitConfig {
	return limit(c.StrictRequests, c.StrictWindowSec, c.StrictBurst)
}

func (c Config) ModerateLimit() httpx.RateLimitConfig {
	return limit(c.ModerateRequests, c.ModerateWindowSec, c.ModerateBurst)
}

func (c Config) LenientLimit() httpx.RateLimitConfig {
	return limit(c.LenientRequests, c.LenientWindowSec, c.LenientBurst)
}

func limit(requests, windowSec, burst int) httpx.RateLimitConfig {
	return httpx.RateLimitConfig{
		RequestsPerWindow: requests,
		Window:            time.Duration(windowSec) * time.Second,
		Burst:             burst,
	}
}

// AllowedOrigins splits CORSAllowedOrigins, dropping empty entries.
func (c Config) AllowedOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

func (c Config) Proxies() (httpx.TrustedProxies, error) {
	return httpx.ParseTrustedProxies(splitList(c.TrustedProxies))
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
