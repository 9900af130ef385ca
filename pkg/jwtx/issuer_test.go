package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/bloggr/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newIssuer(t *testing.T) *jwtx.TokenIssuer {
	t.Helper()
	iss, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		Issuer:        "bloggr",
	})
	require.NoError(t, err)
	return iss
}

func TestNewTokenIssuerRejectsSharedSecret(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{AccessSecret: "same", RefreshSecret: "same"})
	require.Error(t, err)

	_, err = jwtx.NewTokenIssuer(jwtx.IssuerConfig{AccessSecret: "", RefreshSecret: "x"})
	require.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()
	iss := newIssuer(t)
	now := time.Now().Truncate(time.Second)

	tok, err := iss.IssueAccessToken("user-1", now)
	require.NoError(t, err)

	c, err := iss.VerifyAccess(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", c.Subject)
	require.Empty(t, c.DeviceID)
	require.True(t, c.IssuedAtTime().Equal(now))
	require.True(t, c.ExpiresAtTime().Equal(now.Add(time.Minute)))
}

func TestRefreshTokenCarriesDevice(t *testing.T) {
	t.Parallel()
	iss := newIssuer(t)
	now := time.Now().Truncate(time.Second)

	tok, err := iss.IssueRefreshToken("user-1", "device-1", now)
	require.NoError(t, err)

	c, err := iss.VerifyRefresh(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, "device-1", c.DeviceID)

	decoded, err := jwtx.Decode(tok)
	require.NoError(t, err)
	require.Equal(t, c.DeviceID, decoded.DeviceID)
	require.True(t, decoded.IssuedAtTime().Equal(now))
	require.True(t, decoded.ExpiresAtTime().Equal(now.Add(time.Hour)))

	_, err = iss.IssueRefreshToken("user-1", "", now)
	require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	t.Parallel()
	iss := newIssuer(t)
	now := time.Now()

	access, err := iss.IssueAccessToken("user-1", now)
	require.NoError(t, err)
	refresh, err := iss.IssueRefreshToken("user-1", "device-1", now)
	require.NoError(t, err)

	_, err = iss.VerifyRefresh(access)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)

	_, err = iss.VerifyAccess(refresh)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyFailures(t *testing.T) {
	t.Parallel()
	iss := newIssuer(t)

	expired, err := iss.IssueAccessToken("user-1", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	other, err := jwtx.NewTokenIssuer(jwtx.IssuerConfig{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		Issuer:        "someone-else",
	})
	require.NoError(t, err)
	foreign, err := other.IssueAccessToken("user-1", time.Now())
	require.NoError(t, err)

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "bloggr",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	noSubTok, err := noSub.SignedString([]byte("access-secret"))
	require.NoError(t, err)

	noneAlg := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewAccessClaims("user-1", "bloggr", time.Minute, time.Now()))
	noneTok, err := noneAlg.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not.a.jwt", jwtx.ErrMalformed},
		{"expired", expired, jwtx.ErrExpired},
		{"wrong issuer", foreign, jwtx.ErrIssuer},
		{"missing subject", noSubTok, jwtx.ErrInvalidClaim},
		{"alg none", noneTok, jwtx.ErrInvalidSig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := iss.VerifyAccess(tt.token)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRefreshVerifierAdapter(t *testing.T) {
	t.Parallel()
	iss := newIssuer(t)

	tok, err := iss.IssueRefreshToken("user-1", "device-1", time.Now())
	require.NoError(t, err)

	c, err := iss.RefreshVerifier().Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "device-1", c.DeviceID)

	_, err = iss.AccessVerifier().Verify(tok)
	require.Error(t, err)
}
