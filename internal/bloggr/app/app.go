package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/bloggr/internal/bloggr/http"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/metrics"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store/drivers/sqlite"
	"github.com/aussiebroadwan/bloggr/pkg/cryptox"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/aussiebroadwan/bloggr/pkg/jwtx"
	"github.com/aussiebroadwan/bloggr/pkg/mailx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
	"github.com/redis/go-redis/v9"
)

// BuildVersion is overridden at build time via -ldflags.
var BuildVersion = "v0.1.0"

// Application owns every long-lived dependency of the blogging API.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       *sqlite.Store
	tokens   *jwtx.TokenIssuer
	hasher   *cryptox.PasswordHasher
	mailer   mailx.Sender
	metrics  *metrics.Metrics
	redis    *redis.Client // nil with the memory backend
	limiters httpapi.Limiters

	// Services
	sessionService      *service.SessionService
	registrationService *service.RegistrationService
	userService         *service.UserService
	blogService         *service.BlogService
	postService         *service.PostService
	commentService      *service.CommentService
	testingService      *service.TestingService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New builds an Application from cfg. The database is opened and migrated
// before anything else is wired.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "bloggr",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	pepper, err := cryptox.LoadPepper(cfg.PepperFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initTokens(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initLimiters(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initMailer(); err != nil {
		app.closeBackends()
		return nil, err
	}

	app.metrics = metrics.New()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("bloggr starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"rate_limit_backend", app.cfg.RateLimitBackend,
		"testing_endpoints", app.cfg.TestingEndpoints,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			app.closeBackends()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, stops the housekeeping worker and
// closes the backends.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down bloggr...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.closeBackends(); err != nil {
		return err
	}

	app.logger.Info("bloggr stopped")
	return nil
}

func (app *Application) closeBackends() error {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}
	return nil
}

// initDatabase opens the database file and applies migrations
func (app *Application) initDatabase() error {
	db, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile))
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	version, err := db.SchemaVersion()
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	app.logger.Info("database migrations applied successfully",
		"file", app.cfg.DatabaseFile,
		"schema_version", version,
	)
	return nil
}

func (app *Application) initTokens() error {
	access, refresh := app.cfg.JWTAccessSecret, app.cfg.JWTRefreshSecret
	if access == "" || refresh == "" {
		// Only reachable outside prod; tokens stop verifying on restart.
		access, refresh = cryptox.RandomSecret(), cryptox.RandomSecret()
		app.logger.Warn("JWT secrets not configured, using ephemeral secrets")
	}

	tokens, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{
		AccessSecret:  access,
		RefreshSecret: refresh,
		AccessTTL:     app.cfg.JWTAccessTTL,
		RefreshTTL:    app.cfg.JWTRefreshTTL,
		Issuer:        app.cfg.JWTIssuer,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	app.tokens = tokens
	return nil
}

// initLimiters builds one limiter per profile on the configured backend.
func (app *Application) initLimiters() error {
	strict, moderate, lenient := app.cfg.StrictLimit(), app.cfg.ModerateLimit(), app.cfg.LenientLimit()

	if app.cfg.RateLimitBackend != BackendRedis {
		app.limiters = httpapi.Limiters{
			Strict:   httpx.NewMemoryLimiter(strict),
			Moderate: httpx.NewMemoryLimiter(moderate),
			Lenient:  httpx.NewMemoryLimiter(lenient),
		}
		return nil
	}

	opts, err := redis.ParseURL(app.cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	app.redis = client
	app.limiters = httpapi.Limiters{
		Strict:   httpx.NewRedisWindowLimiter(client, "bloggr:rl:strict", strict),
		Moderate: httpx.NewRedisWindowLimiter(client, "bloggr:rl:moderate", moderate),
		Lenient:  httpx.NewRedisWindowLimiter(client, "bloggr:rl:lenient", lenient),
	}
	app.logger.Info("redis rate limiter enabled", "addr", opts.Addr)
	return nil
}

func (app *Application) initMailer() error {
	if app.cfg.SMTPHost == "" {
		app.mailer = mailx.LogSender{Logger: app.logger}
		app.logger.Info("SMTP not configured, outgoing mail is logged")
		return nil
	}

	sender, err := mailx.NewSMTPSender(mailx.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.SMTPFrom,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize SMTP sender: %w", err)
	}
	app.mailer = sender
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.userService = &service.UserService{Store: app.db, Hasher: app.hasher}
	app.sessionService = &service.SessionService{
		Store:       app.db,
		Tokens:      app.tokens,
		Credentials: &service.CredentialService{Store: app.db, Hasher: app.hasher},
		Metrics:     app.metrics,
	}
	app.registrationService = &service.RegistrationService{
		Store:           app.db,
		Hasher:          app.hasher,
		Mailer:          app.mailer,
		CodeTTL:         app.cfg.ConfirmationCodeTTL,
		ConfirmationURL: app.cfg.ConfirmationURL,
		RecoveryURL:     app.cfg.RecoveryURL,
	}
	app.blogService = &service.BlogService{Store: app.db}
	app.postService = &service.PostService{Store: app.db}
	app.commentService = &service.CommentService{Store: app.db}
	app.testingService = &service.TestingService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	// Already checked by LoadConfig.
	proxies, _ := app.cfg.Proxies()

	router := httpapi.NewRouter(
		app.tokens,
		httpapi.Options{
			BuildVersion:     BuildVersion,
			AdminLogin:       app.cfg.AdminLogin,
			AdminPassword:    app.cfg.AdminPassword,
			CookieSecure:     app.cfg.CookieSecure,
			AllowedOrigins:   app.cfg.AllowedOrigins(),
			TrustedProxies:   proxies,
			TestingEndpoints: app.cfg.TestingEndpoints,
		},
		app.db,
		app.limiters,
		app.metrics,
		app.logger,
	)

	router.SessionService = app.sessionService
	router.RegistrationService = app.registrationService
	router.UserService = app.userService
	router.BlogService = app.blogService
	router.PostService = app.postService
	router.CommentService = app.commentService
	router.TestingService = app.testingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
