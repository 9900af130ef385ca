package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token lifetimes. Both are overridable through configuration.
const (
	DefaultAccessTokenTTL  = 10 * time.Minute
	DefaultRefreshTokenTTL = 20 * time.Minute
)

// Claims is shared by access and refresh tokens. Access tokens only carry
// the registered claims; refresh tokens additionally pin the device.
type Claims struct {
	jwt.RegisteredClaims

	// DeviceID identifies the session a refresh token belongs to. It is
	// minted once at login and survives every rotation.
	DeviceID string `json:"deviceId,omitempty"`
}

// NewAccessClaims builds the claims for an access token issued at now.
func NewAccessClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// NewRefreshClaims builds the claims for a refresh token bound to deviceID.
// No nbf is set: a rotated token may carry an iat one second ahead of the
// wall clock and must still be usable immediately.
func NewRefreshClaims(subject, deviceID, issuer string, ttl time.Duration, now time.Time) Claims {
	c := NewAccessClaims(subject, issuer, ttl, now)
	c.DeviceID = deviceID
	return c
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// IssuedAtTime returns iat, or the zero time when absent.
func (c Claims) IssuedAtTime() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.UTC()
}

// ExpiresAtTime returns exp, or the zero time when absent.
func (c Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.UTC()
}
