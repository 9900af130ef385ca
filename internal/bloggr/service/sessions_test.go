package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestCredentialVerify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "alice")
	creds := f.sessions.Credentials

	id, err := creds.Verify(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, u.ID, id)

	id, err = creds.Verify(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, u.ID, id)

	_, err = creds.Verify(ctx, "alice", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = creds.Verify(ctx, "nobody", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginCreatesSessionMatchingRefreshToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "alice")

	pair := f.login(t, "alice", "Firefox")

	access, err := f.tokens.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, u.ID, access.Subject)

	claims, err := jwtx.Decode(pair.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, claims.DeviceID)

	sess, err := f.store.Sessions().GetSessionByDeviceID(ctx, claims.DeviceID)
	require.NoError(t, err)
	require.Equal(t, u.ID, sess.UserID)
	require.Equal(t, "Firefox", sess.DeviceName)
	require.Equal(t, "127.0.0.1", sess.IP)
	require.True(t, sess.IssuedAt.Equal(claims.IssuedAtTime()))
	require.True(t, sess.ExpiresAt.Equal(claims.ExpiresAtTime()))

	id := f.resolve(t, pair.RefreshToken)
	require.Equal(t, claims.DeviceID, id.DeviceID)
	require.Equal(t, u.ID, id.UserID)
}

func TestLoginWithoutUserAgent(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice")

	pair := f.login(t, "alice", "  ")
	id := f.resolve(t, pair.RefreshToken)

	sess, err := f.store.Sessions().GetSessionByDeviceID(context.Background(), id.DeviceID)
	require.NoError(t, err)
	require.Equal(t, UnknownDevice, sess.DeviceName)
}

func TestEachLoginIsANewDevice(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "alice")

	a := f.resolve(t, f.login(t, "alice", "a").RefreshToken)
	b := f.resolve(t, f.login(t, "alice", "b").RefreshToken)
	require.NotEqual(t, a.DeviceID, b.DeviceID)

	devices, err := f.sessions.ListDevices(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, devices, 2)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice")

	pair, err := f.sessions.Login(context.Background(), LoginInput{LoginOrEmail: "alice", Password: "nope"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.Empty(t, pair.AccessToken)
	require.Empty(t, pair.RefreshToken)
}

type failingSessions struct {
	store.Sessions
}

func (failingSessions) CreateSession(context.Context, domain.Session) error {
	return errors.New("disk full")
}

type storeWithFailingSessions struct {
	store.Store
}

func (s storeWithFailingSessions) Sessions() store.Sessions {
	return failingSessions{s.Store.Sessions()}
}

func TestLoginReturnsNoTokensWhenSessionNotStored(t *testing.T) {
	base := newFixture(t)
	base.createUser(t, "alice")

	f := newFixtureWithStore(t, storeWithFailingSessions{base.store})
	pair, err := f.sessions.Login(context.Background(), LoginInput{LoginOrEmail: "alice", Password: "secret123"})
	require.Error(t, err)
	require.Equal(t, domain.TokenPair{}, pair)
}

func TestSequentialRefreshRotatesAndRejectsStaleTokens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createUser(t, "alice")

	first := f.login(t, "alice", "phone")
	current := first.RefreshToken
	prev := f.resolve(t, current)
	var seen []string

	// Same clock second every time: iat must still move forward.
	for range 3 {
		id := f.resolve(t, current)
		pair, err := f.sessions.Refresh(ctx, id)
		require.NoError(t, err)

		next := f.resolve(t, pair.RefreshToken)
		require.Equal(t, prev.DeviceID, next.DeviceID)
		require.True(t, next.IssuedAt.After(id.IssuedAt))

		seen = append(seen, current)
		current = pair.RefreshToken
		prev = next
	}

	for _, old := range seen {
		_, err := f.sessions.ResolveRefreshToken(ctx, old)
		require.ErrorIs(t, err, ErrInvalidRefresh)
		require.ErrorIs(t, err, ErrStaleSession)
	}

	f.resolve(t, current)
}

func TestRefreshRaceHasOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createUser(t, "alice")

	id := f.resolve(t, f.login(t, "alice", "phone").RefreshToken)

	const n = 5
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		wins   int
		stales int
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.sessions.Refresh(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrStaleSession):
				stales++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, wins)
	require.Equal(t, n-1, stales)
}

func TestResolveRefreshTokenFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "alice")
	pair := f.login(t, "alice", "phone")

	_, err := f.sessions.ResolveRefreshToken(ctx, "")
	require.ErrorIs(t, err, ErrInvalidRefresh)

	_, err = f.sessions.ResolveRefreshToken(ctx, "garbage")
	require.ErrorIs(t, err, ErrInvalidRefresh)

	// An access token is signed with the other secret.
	_, err = f.sessions.ResolveRefreshToken(ctx, pair.AccessToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)

	require.NoError(t, f.users.Delete(ctx, u.ID))
	_, err = f.sessions.ResolveRefreshToken(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createUser(t, "alice")
	pair := f.login(t, "alice", "phone")
	id := f.resolve(t, pair.RefreshToken)

	require.NoError(t, f.sessions.Logout(ctx, id))
	require.ErrorIs(t, f.sessions.Logout(ctx, id), ErrSessionNotFound)

	_, err := f.sessions.ResolveRefreshToken(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRevokeOthersKeepsOnlyCurrentDevice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.createUser(t, "alice")
	other := f.createUser(t, "bob")

	pairs := []domain.TokenPair{
		f.login(t, "alice", "one"),
		f.login(t, "alice", "two"),
		f.login(t, "alice", "three"),
	}
	bob := f.login(t, "bob", "bob")
	current := f.resolve(t, pairs[1].RefreshToken)

	require.NoError(t, f.sessions.RevokeOthers(ctx, current))

	devices, err := f.sessions.ListDevices(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, current.DeviceID, devices[0].DeviceID)

	for _, i := range []int{0, 2} {
		_, err := f.sessions.ResolveRefreshToken(ctx, pairs[i].RefreshToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	}

	f.resolve(t, bob.RefreshToken)
	bobDevices, err := f.sessions.ListDevices(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, bobDevices, 1)

	// Nothing left to revoke is still fine.
	require.NoError(t, f.sessions.RevokeOthers(ctx, current))
}

func TestRevokeDeviceOutcomes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createUser(t, "alice")
	f.createUser(t, "bob")

	aliceOne := f.resolve(t, f.login(t, "alice", "one").RefreshToken)
	aliceTwo := f.resolve(t, f.login(t, "alice", "two").RefreshToken)
	bob := f.resolve(t, f.login(t, "bob", "bob").RefreshToken)

	out, err := f.sessions.RevokeDevice(ctx, aliceOne, bob.DeviceID)
	require.NoError(t, err)
	require.Equal(t, RevokeForbidden, out)

	out, err = f.sessions.RevokeDevice(ctx, aliceOne, "no-such-device")
	require.NoError(t, err)
	require.Equal(t, RevokeNotFound, out)

	out, err = f.sessions.RevokeDevice(ctx, aliceOne, aliceTwo.DeviceID)
	require.NoError(t, err)
	require.Equal(t, RevokeOK, out)

	out, err = f.sessions.RevokeDevice(ctx, aliceOne, aliceTwo.DeviceID)
	require.NoError(t, err)
	require.Equal(t, RevokeNotFound, out)

	require.Equal(t, "forbidden", RevokeForbidden.String())
}

func TestListDevicesHidesExpiredSessions(t *testing.T) {
	f := newFixture(t)
	u := f.createUser(t, "alice")
	f.login(t, "alice", "phone")

	f.clock.Advance(2 * time.Hour)
	devices, err := f.sessions.ListDevices(context.Background(), u.ID)
	require.NoError(t, err)
	require.Empty(t, devices)
}
