package http_test

import (
	"context"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	bloggrhttp "github.com/aussiebroadwan/bloggr/internal/bloggr/http"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/metrics"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store/drivers/sqlite"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/cryptox"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/aussiebroadwan/bloggr/pkg/jwtx"
	"github.com/aussiebroadwan/bloggr/pkg/mailx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const (
	adminLogin    = "admin"
	adminPassword = "qwerty"
	userPassword  = "secret123"
	allowedOrigin = "https://app.example.com"
)

var relaxed = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}

type testEnv struct {
	srv   *httptest.Server
	store store.Store
	mail  *mailx.MemorySender
}

type envOption func(*bloggrhttp.Options, *bloggrhttp.Limiters)

func withStrictLimit(cfg httpx.RateLimitConfig) envOption {
	return func(_ *bloggrhttp.Options, l *bloggrhttp.Limiters) {
		l.Strict = httpx.NewMemoryLimiter(cfg)
	}
}

func withoutTestingEndpoints() envOption {
	return func(o *bloggrhttp.Options, _ *bloggrhttp.Limiters) { o.TestingEndpoints = false }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     10 * time.Minute,
		RefreshTTL:    time.Hour,
		Issuer:        "bloggr-test",
	})
	require.NoError(t, err)

	options := bloggrhttp.Options{
		BuildVersion:     "test",
		AdminLogin:       adminLogin,
		AdminPassword:    adminPassword,
		CookieSecure:     true,
		AllowedOrigins:   []string{allowedOrigin, "*"},
		TestingEndpoints: true,
	}
	limiters := bloggrhttp.Limiters{
		Strict:   httpx.NewMemoryLimiter(relaxed),
		Moderate: httpx.NewMemoryLimiter(relaxed),
		Lenient:  httpx.NewMemoryLimiter(relaxed),
	}
	for _, opt := range opts {
		opt(&options, &limiters)
	}

	hasher := cryptox.NewPasswordHasher("test-pepper")
	mail := mailx.NewMemorySender()
	m := metrics.New()

	router := bloggrhttp.NewRouter(tokens, options, st, limiters, m, slogx.Discard())
	router.UserService = &service.UserService{Store: st, Hasher: hasher}
	router.SessionService = &service.SessionService{
		Store:       st,
		Tokens:      tokens,
		Credentials: &service.CredentialService{Store: st, Hasher: hasher},
		Metrics:     m,
	}
	router.RegistrationService = &service.RegistrationService{
		Store:           st,
		Hasher:          hasher,
		Mailer:          mail,
		ConfirmationURL: "https://bloggr.test/confirm-email",
		RecoveryURL:     "https://bloggr.test/password-recovery",
	}
	router.BlogService = &service.BlogService{Store: st}
	router.PostService = &service.PostService{Store: st}
	router.CommentService = &service.CommentService{Store: st}
	router.TestingService = &service.TestingService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewTLSServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{srv: srv, store: st, mail: mail}
}

func (e *testEnv) client(t *testing.T, opts ...blogsdk.Option) *blogsdk.Client {
	t.Helper()
	opts = append([]blogsdk.Option{
		blogsdk.WithTransport(e.srv.Client().Transport),
		blogsdk.WithAdmin(adminLogin, adminPassword),
	}, opts...)
	c, err := blogsdk.NewClient(e.srv.URL, opts...)
	require.NoError(t, err)
	return c
}

// createUser adds a confirmed user through the admin API.
func (e *testEnv) createUser(t *testing.T, login string) *blogsdk.UserView {
	t.Helper()
	u, err := e.client(t).CreateUser(context.Background(), blogsdk.CreateUserRequest{
		Login:    login,
		Password: userPassword,
		Email:    login + "@example.com",
	})
	require.NoError(t, err)
	return u
}

// loggedIn returns a client logged in as login from a device named ua.
func (e *testEnv) loggedIn(t *testing.T, login, ua string) *blogsdk.Client {
	t.Helper()
	c := e.client(t, blogsdk.WithUserAgent(ua))
	_, err := c.Login(context.Background(), login, userPassword)
	require.NoError(t, err)
	require.NotEmpty(t, c.RefreshToken())
	return c
}

var mailedCode = regexp.MustCompile(`(?:code|recoveryCode)=([0-9a-f-]+)`)

func (e *testEnv) lastCode(t *testing.T, addr string) string {
	t.Helper()
	msg, ok := e.mail.Last(addr)
	require.True(t, ok, "no mail sent to %s", addr)
	m := mailedCode.FindStringSubmatch(msg.Body)
	require.Len(t, m, 2)
	return m[1]
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, blogsdk.StatusOf(err), "err: %v", err)
}

func currentDeviceID(t *testing.T, c *blogsdk.Client) string {
	t.Helper()
	claims, err := jwtx.Decode(c.RefreshToken())
	require.NoError(t, err)
	return claims.DeviceID
}

var strictTwo = httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}
