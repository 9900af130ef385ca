package bloggr_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginRefreshLogout(t *testing.T) {
	baseURL := startBloggr(t, relaxedLimits)
	ctx := t.Context()
	createUser(t, baseURL, "alice")

	c := login(t, baseURL, "alice", "e2e laptop")
	first := c.RefreshToken()

	me, err := c.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", me.Login)

	_, err = c.Refresh(ctx)
	require.NoError(t, err)
	require.NotEqual(t, first, c.RefreshToken())

	// The rotated-out token is dead.
	rotated := c.RefreshToken()
	c.SetRefreshToken(first)
	_, err = c.Refresh(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	c.SetRefreshToken(rotated)
	require.NoError(t, c.Logout(ctx))

	c.SetRefreshToken(rotated)
	_, err = c.Refresh(ctx)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestDevicesAcrossLogins(t *testing.T) {
	baseURL := startBloggr(t, relaxedLimits)
	ctx := t.Context()
	createUser(t, baseURL, "alice")

	a := login(t, baseURL, "alice", "Device A")
	b := login(t, baseURL, "alice", "Device B")

	devices, err := a.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	require.NotEqual(t, devices[0].DeviceID, devices[1].DeviceID)
	for _, d := range devices {
		require.Regexp(t, deviceIDPattern, d.DeviceID)
	}

	require.NoError(t, a.RevokeOtherDevices(ctx))

	_, err = b.Refresh(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	devices, err = a.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, "Device A", devices[0].Title)
}

func TestHealthAndTestingEndpoint(t *testing.T) {
	baseURL := startBloggr(t, relaxedLimits)
	ctx := t.Context()
	c := newClient(t, baseURL)

	live, err := c.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)

	ready, err := c.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Status)

	createUser(t, baseURL, "alice")
	require.NoError(t, c.DeleteAllData(ctx))
	_, err = c.Login(ctx, "alice", userPassword)
	requireStatus(t, err, http.StatusUnauthorized)
}

func TestLoginRateLimitDefaults(t *testing.T) {
	baseURL := startBloggr(t, nil)
	ctx := t.Context()
	c := newClient(t, baseURL)

	// The default strict profile admits five attempts per window.
	for range 5 {
		_, err := c.Login(ctx, "nobody", "wrong-password")
		requireStatus(t, err, http.StatusUnauthorized)
	}
	_, err := c.Login(ctx, "nobody", "wrong-password")
	requireStatus(t, err, http.StatusTooManyRequests)
}
