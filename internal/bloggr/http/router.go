package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/metrics"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/aussiebroadwan/bloggr/pkg/jwtx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
	"github.com/go-chi/cors"

	_ "github.com/aussiebroadwan/bloggr/api/bloggr" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options are the router settings that come from configuration.
type Options struct {
	BuildVersion     string
	AdminLogin       string
	AdminPassword    string
	CookieSecure     bool
	AllowedOrigins   []string
	TrustedProxies   httpx.TrustedProxies
	TestingEndpoints bool
}

// Limiters holds one limiter per rate limit profile.
type Limiters struct {
	Strict   httpx.Limiter // credential and email-sending routes, per route and IP
	Moderate httpx.Limiter // authenticated writes, per user
	Lenient  httpx.Limiter // public reads, per IP
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	tokens    *jwtx.TokenIssuer
	opts      Options
	startTime time.Time
	logger    *slog.Logger
	limiters  Limiters
	metrics   *metrics.Metrics

	store               store.Store
	SessionService      *service.SessionService
	RegistrationService *service.RegistrationService
	UserService         *service.UserService
	BlogService         *service.BlogService
	PostService         *service.PostService
	CommentService      *service.CommentService
	TestingService      *service.TestingService
}

func NewRouter(
	tokens *jwtx.TokenIssuer,
	opts Options,
	st store.Store,
	limiters Limiters,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:       http.NewServeMux(),
		tokens:    tokens,
		opts:      opts,
		startTime: time.Now(),
		logger:    logger,
		limiters:  limiters,
		metrics:   m,
		store:     st,
	}

	// slogx sits outermost so the request logger exists for everything below.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.ClientIPMiddleware(opts.TrustedProxies),
		m.Middleware,
		cors.Handler(cors.Options{
			AllowOriginFunc:  originAllowed(opts.AllowedOrigins),
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Retry-After", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

// originAllowed matches exact origins only. Credentialed requests cannot
// use a wildcard origin, so "*" entries are ignored and an empty list
// admits no cross-origin caller.
func originAllowed(origins []string) func(*http.Request, string) bool {
	allowed := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		if o != "" && o != "*" {
			allowed[o] = struct{}{}
		}
	}
	return func(_ *http.Request, origin string) bool {
		_, ok := allowed[origin]
		return ok
	}
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerSecurity()
	r.registerUsers()
	r.registerBlogs()
	r.registerPosts()
	r.registerComments()
	r.registerTesting()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Bloggr API
//	@version		0.1.0
//	@description	Blogs, posts and comments with per-device session management.
//	@description
//	@description	Access tokens are HS256 JWTs sent as bearer tokens. Refresh tokens travel only in the HttpOnly refreshToken cookie and rotate on every use.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/bloggr
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
//
//	@securityDefinitions.basic	BasicAuth
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) cookies() cookieWriter {
	return cookieWriter{Secure: r.opts.CookieSecure, TTL: r.tokens.RefreshTTL()}
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Sessions:  r.SessionService,
		Registrar: r.RegistrationService,
		Users:     r.UserService,
		Cookies:   r.cookies(),
	}

	// Credential and email-sending routes share the strict profile, but
	// each route gets its own window per client IP.
	strict := httpx.RateLimitByRouteAndIP(r.limiters.Strict)
	for pattern, fn := range map[string]http.HandlerFunc{
		"POST /auth/login":                        h.Login,
		"POST /auth/registration":                 h.Registration,
		"POST /auth/registration-confirmation":    h.RegistrationConfirmation,
		"POST /auth/registration-email-resending": h.RegistrationEmailResending,
		"POST /auth/password-recovery":            h.PasswordRecovery,
		"POST /auth/new-password":                 h.NewPassword,
	} {
		r.Mux.Handle(pattern, httpx.Chain(fn, strict))
	}

	refresh := RequireRefreshToken(r.SessionService)
	r.Mux.Handle("POST /auth/refresh-token", httpx.Chain(http.HandlerFunc(h.RefreshToken), refresh))
	r.Mux.Handle("POST /auth/logout", httpx.Chain(http.HandlerFunc(h.Logout), refresh))

	r.Mux.Handle("GET /auth/me",
		httpx.Chain(http.HandlerFunc(h.Me),
			httpx.AuthnMiddleware(r.tokens.AccessVerifier()),
			httpx.RateLimitByUser(r.limiters.Lenient),
		),
	)
}

func (r *Router) registerSecurity() {
	h := &DevicesHandler{Sessions: r.SessionService}
	refresh := RequireRefreshToken(r.SessionService)

	r.Mux.Handle("GET /security/devices", httpx.Chain(http.HandlerFunc(h.List), refresh))
	r.Mux.Handle("DELETE /security/devices", httpx.Chain(http.HandlerFunc(h.RevokeOthers), refresh))
	r.Mux.Handle("DELETE /security/devices/{deviceId}", httpx.Chain(http.HandlerFunc(h.Revoke), refresh))
}

func (r *Router) admin(fn http.HandlerFunc) http.Handler {
	return httpx.Chain(fn, httpx.BasicAuth(r.opts.AdminLogin, r.opts.AdminPassword))
}

// public routes attach the caller's identity when a valid token is sent.
func (r *Router) public(fn http.HandlerFunc) http.Handler {
	return httpx.Chain(fn,
		httpx.OptionalAuthn(r.tokens.AccessVerifier()),
		httpx.RateLimitByIP(r.limiters.Lenient),
	)
}

func (r *Router) authenticated(fn http.HandlerFunc) http.Handler {
	return httpx.Chain(fn,
		httpx.AuthnMiddleware(r.tokens.AccessVerifier()),
		httpx.RateLimitByUser(r.limiters.Moderate),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Users: r.UserService}

	r.Mux.Handle("GET /users", r.admin(h.List))
	r.Mux.Handle("POST /users", r.admin(h.Create))
	r.Mux.Handle("DELETE /users/{id}", r.admin(h.Delete))
}

func (r *Router) registerBlogs() {
	h := &BlogsHandler{Blogs: r.BlogService, Posts: r.PostService}

	r.Mux.Handle("GET /blogs", r.public(h.List))
	r.Mux.Handle("GET /blogs/{id}", r.public(h.Get))
	r.Mux.Handle("GET /blogs/{id}/posts", r.public(h.ListPosts))

	r.Mux.Handle("POST /blogs", r.admin(h.Create))
	r.Mux.Handle("PUT /blogs/{id}", r.admin(h.Update))
	r.Mux.Handle("DELETE /blogs/{id}", r.admin(h.Delete))
	r.Mux.Handle("POST /blogs/{id}/posts", r.admin(h.CreatePost))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{Posts: r.PostService, Comments: r.CommentService}

	r.Mux.Handle("GET /posts", r.public(h.List))
	r.Mux.Handle("GET /posts/{id}", r.public(h.Get))
	r.Mux.Handle("GET /posts/{id}/comments", r.public(h.ListComments))

	r.Mux.Handle("POST /posts", r.admin(h.Create))
	r.Mux.Handle("PUT /posts/{id}", r.admin(h.Update))
	r.Mux.Handle("DELETE /posts/{id}", r.admin(h.Delete))

	r.Mux.Handle("PUT /posts/{id}/like-status", r.authenticated(h.LikeStatus))
	r.Mux.Handle("POST /posts/{id}/comments", r.authenticated(h.CreateComment))
}

func (r *Router) registerComments() {
	h := &CommentsHandler{Comments: r.CommentService}

	r.Mux.Handle("GET /comments/{id}", r.public(h.Get))
	r.Mux.Handle("PUT /comments/{id}", r.authenticated(h.Update))
	r.Mux.Handle("DELETE /comments/{id}", r.authenticated(h.Delete))
	r.Mux.Handle("PUT /comments/{id}/like-status", r.authenticated(h.LikeStatus))
}

func (r *Router) registerTesting() {
	if !r.opts.TestingEndpoints {
		return
	}
	h := &TestingHandler{Testing: r.TestingService}
	r.Mux.Handle("DELETE /testing/all-data", http.HandlerFunc(h.DeleteAll))
}

func (r *Router) registerSystem() {
	var limiterPing Pinger
	if p, ok := r.limiters.Strict.(Pinger); ok {
		limiterPing = p
	}

	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.opts.BuildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.opts.BuildVersion, r.store, limiterPing))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
