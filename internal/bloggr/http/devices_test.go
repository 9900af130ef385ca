package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDevicesListsEachLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")

	a := env.loggedIn(t, "alice", "Device A")
	env.loggedIn(t, "alice", "Device B")

	devices, err := a.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	require.NotEqual(t, devices[0].DeviceID, devices[1].DeviceID)

	titles := []string{devices[0].Title, devices[1].Title}
	require.ElementsMatch(t, []string{"Device A", "Device B"}, titles)
	for _, d := range devices {
		require.NotEmpty(t, d.IP)
		require.NotEmpty(t, d.LastActiveDate)
	}
}

func TestRevokeOtherDevices(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")

	a := env.loggedIn(t, "alice", "Device A")
	b := env.loggedIn(t, "alice", "Device B")

	require.NoError(t, a.RevokeOtherDevices(ctx))

	_, err := b.Refresh(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	devices, err := a.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, currentDeviceID(t, a), devices[0].DeviceID)

	_, err = a.Refresh(ctx)
	require.NoError(t, err)
}

func TestRevokeDevice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createUser(t, "alice")
	env.createUser(t, "bob")

	a1 := env.loggedIn(t, "alice", "one")
	a2 := env.loggedIn(t, "alice", "two")
	bob := env.loggedIn(t, "bob", "bob")

	requireStatus(t, a1.RevokeDevice(ctx, currentDeviceID(t, bob)), http.StatusForbidden)
	requireStatus(t, a1.RevokeDevice(ctx, "no-such-device"), http.StatusNotFound)

	target := currentDeviceID(t, a2)
	require.NoError(t, a1.RevokeDevice(ctx, target))
	requireStatus(t, a1.RevokeDevice(ctx, target), http.StatusNotFound)

	_, err := a2.Refresh(ctx)
	requireStatus(t, err, http.StatusUnauthorized)

	// Bob's session is untouched by the forbidden attempt.
	_, err = bob.Refresh(ctx)
	require.NoError(t, err)
}

func TestDevicesRequireRefreshCookie(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.client(t).Devices(context.Background())
	requireStatus(t, err, http.StatusUnauthorized)
}
