package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterConfirmLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.client(t)

	require.NoError(t, c.Register(ctx, blogsdk.RegistrationRequest{
		Login:    "alice",
		Password: userPassword,
		Email:    "alice@example.com",
	}))
	require.NoError(t, c.ConfirmRegistration(ctx, env.lastCode(t, "alice@example.com")))

	access, err := c.Login(ctx, "alice", userPassword)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, c.RefreshToken())

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Login)
	require.Equal(t, "alice@example.com", me.Email)
	require.NotEmpty(t, me.UserID)
}

func TestLoginFailuresLookTheSame(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")
	c := env.client(t)

	_, err := c.Login(ctx, "alice", "wrong-password")
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = c.Login(ctx, "nobody", "wrong-password")
	requireStatus(t, err, http.StatusUnauthorized)

	_, err = c.Login(ctx, "", "")
	var ve *blogsdk.ValidationError
	require.ErrorAs(t, err, &ve)
	require.True(t, ve.HasField("loginOrEmail"))
	require.True(t, ve.HasField("password"))
}

func TestRegistrationValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")
	c := env.client(t)

	cases := []struct {
		name   string
		in     blogsdk.RegistrationRequest
		fields []string
	}{
		{
			name:   "short login and password",
			in:     blogsdk.RegistrationRequest{Login: "ab", Password: "123", Email: "ab@example.com"},
			fields: []string{"login", "password"},
		},
		{
			name:   "bad login characters",
			in:     blogsdk.RegistrationRequest{Login: "a b!", Password: userPassword, Email: "ab@example.com"},
			fields: []string{"login"},
		},
		{
			name:   "bad email",
			in:     blogsdk.RegistrationRequest{Login: "bob", Password: userPassword, Email: "not-an-email"},
			fields: []string{"email"},
		},
		{
			name:   "duplicate login and email",
			in:     blogsdk.RegistrationRequest{Login: "alice", Password: userPassword, Email: "alice@example.com"},
			fields: []string{"login", "email"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := c.Register(ctx, tc.in)
			var ve *blogsdk.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Errors, len(tc.fields))
			for _, f := range tc.fields {
				require.True(t, ve.HasField(f), "missing field %s in %v", f, ve.Errors)
			}
		})
	}
}

func TestConfirmationErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	c := env.client(t)

	err := c.ConfirmRegistration(ctx, "00000000-0000-0000-0000-000000000000")
	var ve *blogsdk.ValidationError
	require.ErrorAs(t, err, &ve)
	require.True(t, ve.HasField("code"))

	err = c.ResendConfirmation(ctx, "nobody@example.com")
	require.ErrorAs(t, err, &ve)
	require.True(t, ve.HasField("email"))

	require.NoError(t, c.Register(ctx, blogsdk.RegistrationRequest{Login: "bob", Password: userPassword, Email: "bob@example.com"}))
	require.NoError(t, c.ResendConfirmation(ctx, "bob@example.com"))
	require.NoError(t, c.ConfirmRegistration(ctx, env.lastCode(t, "bob@example.com")))

	err = c.ResendConfirmation(ctx, "bob@example.com")
	require.ErrorAs(t, err, &ve)
	require.True(t, ve.HasField("email"))
}

func TestRefreshRotatesCookie(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")
	c := env.loggedIn(t, "alice", "laptop")
	device := currentDeviceID(t, c)

	first := c.RefreshToken()
	_, err := c.Refresh(ctx)
	require.NoError(t, err)
	second := c.RefreshToken()
	require.NotEqual(t, first, second)
	require.Equal(t, device, currentDeviceID(t, c))

	_, err = c.Refresh(ctx)
	require.NoError(t, err)
	current := c.RefreshToken()

	// Replaying a rotated token fails and leaves the session intact.
	c.SetRefreshToken(first)
	_, err = c.Refresh(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	c.SetRefreshToken(current)
	_, err = c.Refresh(ctx)
	require.NoError(t, err)
}

func TestRefreshWithoutCookie(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.client(t).Refresh(context.Background())
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestLogoutThenReplay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")
	c := env.loggedIn(t, "alice", "laptop")
	original := c.RefreshToken()

	require.NoError(t, c.Logout(ctx))
	require.Empty(t, c.RefreshToken())

	c.SetRefreshToken(original)
	_, err := c.Refresh(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	requireStatus(t, c.Logout(ctx), http.StatusUnauthorized)
}

func TestMeRequiresAccessToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")
	c := env.loggedIn(t, "alice", "laptop")

	// The refresh token is signed with the other secret.
	c.SetAccessToken(c.RefreshToken())
	_, err := c.Me(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	c.SetAccessToken("")
	_, err = c.Me(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestPasswordRecovery(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")
	other := env.loggedIn(t, "alice", "phone")
	c := env.client(t)

	require.NoError(t, c.RecoverPassword(ctx, "nobody@example.com"))
	require.NoError(t, c.RecoverPassword(ctx, "alice@example.com"))

	err := c.SetNewPassword(ctx, "newpass1", "not-a-code")
	var ve *blogsdk.ValidationError
	require.ErrorAs(t, err, &ve)
	require.True(t, ve.HasField("recoveryCode"))

	require.NoError(t, c.SetNewPassword(ctx, "newpass1", env.lastCode(t, "alice@example.com")))

	_, err = c.Login(ctx, "alice", userPassword)
	requireStatus(t, err, http.StatusUnauthorized)
	_, err = c.Login(ctx, "alice", "newpass1")
	require.NoError(t, err)

	_, err = other.Refresh(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t, withStrictLimit(strictTwo))
	ctx := context.Background()
	c := env.client(t)

	for range 2 {
		_, err := c.Login(ctx, "nobody", "whatever")
		requireStatus(t, err, http.StatusUnauthorized)
	}
	_, err := c.Login(ctx, "nobody", "whatever")
	requireStatus(t, err, http.StatusTooManyRequests)

	// Other strict routes keep their own window.
	require.NoError(t, c.RecoverPassword(ctx, "nobody@example.com"))
}
