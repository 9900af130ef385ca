package jwtx

import (
	"errors"
	"fmt"
	"time"
)

// IssuerConfig configures a TokenIssuer. The access and refresh secrets
// must differ so that one kind of token can never be replayed as the other.
type IssuerConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	Issuer        string
}

// TokenIssuer mints and verifies the access/refresh token pair.
type TokenIssuer struct {
	access     *HS256
	refresh    *HS256
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
}

func NewTokenIssuer(cfg IssuerConfig) (*TokenIssuer, error) {
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, errors.New("jwtx: access and refresh secrets must differ")
	}

	access, err := NewHS256([]byte(cfg.AccessSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("access key: %w", err)
	}
	refresh, err := NewHS256([]byte(cfg.RefreshSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("refresh key: %w", err)
	}

	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTokenTTL
	}

	return &TokenIssuer{
		access:     access,
		refresh:    refresh,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		issuer:     cfg.Issuer,
	}, nil
}

func (t *TokenIssuer) AccessTTL() time.Duration  { return t.accessTTL }
func (t *TokenIssuer) RefreshTTL() time.Duration { return t.refreshTTL }

// IssueAccessToken signs an access token for userID issued at now.
func (t *TokenIssuer) IssueAccessToken(userID string, now time.Time) (string, error) {
	return t.access.Sign(NewAccessClaims(userID, t.issuer, t.accessTTL, now))
}

// IssueRefreshToken signs a refresh token for userID bound to deviceID.
func (t *TokenIssuer) IssueRefreshToken(userID, deviceID string, now time.Time) (string, error) {
	if deviceID == "" {
		return "", fmt.Errorf("%w: empty device id", ErrInvalidClaim)
	}
	return t.refresh.Sign(NewRefreshClaims(userID, deviceID, t.issuer, t.refreshTTL, now))
}

// VerifyAccess checks an access token against the access secret.
func (t *TokenIssuer) VerifyAccess(token string) (Claims, error) {
	return t.access.Verify(token)
}

// VerifyRefresh checks a refresh token against the refresh secret and
// requires the device binding.
func (t *TokenIssuer) VerifyRefresh(token string) (Claims, error) {
	c, err := t.refresh.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	if c.DeviceID == "" || c.IssuedAt == nil {
		return Claims{}, fmt.Errorf("%w: refresh token without device binding", ErrInvalidClaim)
	}
	return c, nil
}

// AccessVerifier exposes access-token verification as a Verifier.
func (t *TokenIssuer) AccessVerifier() Verifier { return t.access }

// RefreshVerifier exposes refresh-token verification as a Verifier.
func (t *TokenIssuer) RefreshVerifier() Verifier { return verifierFunc(t.VerifyRefresh) }

type verifierFunc func(string) (Claims, error)

func (f verifierFunc) Verify(token string) (Claims, error) { return f(token) }
