package service

import (
	"context"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/metrics"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store/drivers/sqlite"
	"github.com/aussiebroadwan/bloggr/pkg/cryptox"
	"github.com/aussiebroadwan/bloggr/pkg/jwtx"
	"github.com/aussiebroadwan/bloggr/pkg/mailx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
	"github.com/stretchr/testify/require"
)

// testClock starts at the current wall second so issued tokens stay
// valid under the verifier's real-time expiry check.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Now().Truncate(time.Second)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	store    store.Store
	clock    *testClock
	hasher   *cryptox.PasswordHasher
	mail     *mailx.MemorySender
	tokens   *jwtx.TokenIssuer
	sessions *SessionService
	reg      *RegistrationService
	users    *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	return newFixtureWithStore(t, st)
}

func newFixtureWithStore(t *testing.T, st store.Store) *fixture {
	t.Helper()

	tokens, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     10 * time.Minute,
		RefreshTTL:    time.Hour,
		Issuer:        "bloggr-test",
	})
	require.NoError(t, err)

	f := &fixture{
		store:  st,
		clock:  newTestClock(),
		hasher: cryptox.NewPasswordHasher("test-pepper"),
		mail:   mailx.NewMemorySender(),
		tokens: tokens,
	}
	f.sessions = &SessionService{
		Store:       st,
		Tokens:      tokens,
		Credentials: &CredentialService{Store: st, Hasher: f.hasher},
		Metrics:     metrics.New(),
		Now:         f.clock.Now,
	}
	f.reg = &RegistrationService{
		Store:           st,
		Hasher:          f.hasher,
		Mailer:          f.mail,
		ConfirmationURL: "https://bloggr.test/confirm-email",
		RecoveryURL:     "https://bloggr.test/password-recovery",
		Now:             f.clock.Now,
	}
	f.users = &UserService{Store: st, Hasher: f.hasher, Now: f.clock.Now}
	return f
}

// createUser adds a confirmed user with password "secret123".
func (f *fixture) createUser(t *testing.T, login string) domain.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), RegisterInput{
		Login:    login,
		Password: "secret123",
		Email:    login + "@example.com",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) login(t *testing.T, login, device string) domain.TokenPair {
	t.Helper()
	pair, err := f.sessions.Login(context.Background(), LoginInput{
		LoginOrEmail: login,
		Password:     "secret123",
		DeviceName:   device,
		IP:           "127.0.0.1",
	})
	require.NoError(t, err)
	return pair
}

func (f *fixture) resolve(t *testing.T, refresh string) RefreshIdentity {
	t.Helper()
	id, err := f.sessions.ResolveRefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	return id
}

var codeParam = regexp.MustCompile(`(?:code|recoveryCode)=([0-9a-f-]+)`)

// mailedCode extracts the code from the last message sent to addr.
func (f *fixture) mailedCode(t *testing.T, addr string) string {
	t.Helper()
	msg, ok := f.mail.Last(addr)
	require.True(t, ok, "no mail sent to %s", addr)
	m := codeParam.FindStringSubmatch(msg.Body)
	require.Len(t, m, 2, "no code in %q", msg.Body)
	return m[1]
}

func discardLogger() *slog.Logger { return slogx.Discard() }
