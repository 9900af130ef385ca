package domain

import "time"

// Session is one logged-in device. IssuedAt and ExpiresAt always equal the
// iat/exp of the refresh token currently valid for the device; a presented
// token with a different iat is stale.
type Session struct {
	ID         string
	UserID     string
	DeviceID   string // stable across refreshes
	DeviceName string // from the client's User-Agent
	IP         string
	IssuedAt   time.Time // second precision
	ExpiresAt  time.Time
}

// TokenPair is what login and refresh hand back. The refresh token is sent
// as a cookie, never in a body.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
