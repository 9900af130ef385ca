package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/metrics"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/idx"
	"github.com/aussiebroadwan/bloggr/pkg/jwtx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
	"github.com/google/uuid"
)

// UnknownDevice titles sessions whose client sent no User-Agent.
const UnknownDevice = "unknown device"

const maxDeviceNameLen = 200

// RevokeOutcome is the result of revoking a specific device.
type RevokeOutcome int

const (
	RevokeOK RevokeOutcome = iota
	RevokeNotFound
	RevokeForbidden
)

func (o RevokeOutcome) String() string {
	switch o {
	case RevokeOK:
		return "ok"
	case RevokeNotFound:
		return "not_found"
	case RevokeForbidden:
		return "forbidden"
	}
	return fmt.Sprintf("RevokeOutcome(%d)", int(o))
}

type LoginInput struct {
	LoginOrEmail string
	Password     string
	DeviceName   string
	IP           string
}

// RefreshIdentity is what a valid refresh token proves: the user, the
// device and the iat the session is currently at.
type RefreshIdentity struct {
	UserID   string
	DeviceID string
	IssuedAt time.Time
}

// SessionService owns the per-device session lifecycle:
// login creates, refresh rotates, logout and revocation delete.
type SessionService struct {
	Store       store.Store
	Tokens      *jwtx.TokenIssuer
	Credentials *CredentialService
	Metrics     *metrics.Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login verifies credentials and opens a session on a fresh device id.
// Tokens are only returned once the session row exists.
func (s *SessionService) Login(ctx context.Context, in LoginInput) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	userID, err := s.Credentials.Verify(ctx, in.LoginOrEmail, in.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			s.Metrics.SessionEvent(metrics.EventLoginFailed)
		}
		return domain.TokenPair{}, err
	}

	now := s.now().Truncate(time.Second)
	deviceID := uuid.NewString()

	pair, claims, err := s.issuePair(userID, deviceID, now)
	if err != nil {
		return domain.TokenPair{}, err
	}

	session := domain.Session{
		ID:         idx.NewString(),
		UserID:     userID,
		DeviceID:   deviceID,
		DeviceName: deviceTitle(in.DeviceName),
		IP:         in.IP,
		IssuedAt:   claims.IssuedAtTime(),
		ExpiresAt:  claims.ExpiresAtTime(),
	}
	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return domain.TokenPair{}, fmt.Errorf("create session: %w", err)
	}

	s.Metrics.SessionEvent(metrics.EventLogin)
	l.Info("session created", slog.String("user_id", userID), slog.String("device_id", deviceID))
	return pair, nil
}

// ResolveRefreshToken runs every check a refresh token must pass: valid
// signature and expiry, a session for its device, an iat equal to the
// session's, a matching owner and a user that still exists. All failures
// are ErrInvalidRefresh.
func (s *SessionService) ResolveRefreshToken(ctx context.Context, token string) (RefreshIdentity, error) {
	l := slogx.FromContext(ctx)

	if token == "" {
		return RefreshIdentity{}, ErrInvalidRefresh
	}

	claims, err := s.Tokens.VerifyRefresh(token)
	if err != nil {
		l.Debug("refresh token rejected", "err", err)
		return RefreshIdentity{}, fmt.Errorf("%w: %w", ErrInvalidRefresh, err)
	}

	session, err := s.Store.Sessions().GetSessionByDeviceID(ctx, claims.DeviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RefreshIdentity{}, fmt.Errorf("%w: %w", ErrInvalidRefresh, ErrSessionNotFound)
		}
		return RefreshIdentity{}, err
	}

	iat := claims.IssuedAtTime()
	if !session.IssuedAt.Equal(iat) {
		s.Metrics.SessionEvent(metrics.EventStaleRefreshRejected)
		l.Warn("stale refresh token presented",
			slog.String("device_id", claims.DeviceID),
			slog.Time("token_iat", iat),
			slog.Time("session_iat", session.IssuedAt),
		)
		return RefreshIdentity{}, fmt.Errorf("%w: %w", ErrInvalidRefresh, ErrStaleSession)
	}

	if session.UserID != claims.Subject {
		return RefreshIdentity{}, ErrInvalidRefresh
	}

	if _, err := s.Store.Users().GetUserByID(ctx, claims.Subject); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RefreshIdentity{}, fmt.Errorf("%w: %w", ErrInvalidRefresh, ErrUserNotFound)
		}
		return RefreshIdentity{}, err
	}

	return RefreshIdentity{UserID: claims.Subject, DeviceID: claims.DeviceID, IssuedAt: iat}, nil
}

// Refresh rotates the device's token pair. The session moves to the new
// iat only if it is still at id.IssuedAt; losing that race returns
// ErrStaleSession and no tokens.
func (s *SessionService) Refresh(ctx context.Context, id RefreshIdentity) (domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	// iat has second resolution, so a rotation within the same second as
	// the previous one is pushed forward to keep iat strictly increasing.
	now := s.now().Truncate(time.Second)
	if !now.After(id.IssuedAt) {
		now = id.IssuedAt.Add(time.Second)
	}

	pair, claims, err := s.issuePair(id.UserID, id.DeviceID, now)
	if err != nil {
		return domain.TokenPair{}, err
	}

	ok, err := s.Store.Sessions().UpdateSessionIatExp(ctx,
		id.UserID, id.DeviceID, id.IssuedAt, claims.IssuedAtTime(), claims.ExpiresAtTime())
	if err != nil {
		return domain.TokenPair{}, fmt.Errorf("rotate session: %w", err)
	}
	if !ok {
		s.Metrics.SessionEvent(metrics.EventStaleRefreshRejected)
		l.Warn("refresh lost rotation race", slog.String("device_id", id.DeviceID))
		return domain.TokenPair{}, ErrStaleSession
	}

	s.Metrics.SessionEvent(metrics.EventRefresh)
	return pair, nil
}

// Logout ends the current device's session.
func (s *SessionService) Logout(ctx context.Context, id RefreshIdentity) error {
	ok, err := s.Store.Sessions().DeleteSessionByDeviceID(ctx, id.DeviceID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSessionNotFound
	}
	s.Metrics.SessionEvent(metrics.EventLogout)
	return nil
}

// RevokeOthers ends every session of the user except the current one.
// Having nothing else to revoke is not an error.
func (s *SessionService) RevokeOthers(ctx context.Context, id RefreshIdentity) error {
	removed, err := s.Store.Sessions().DeleteSessionsExceptDevice(ctx, id.UserID, id.DeviceID)
	if err != nil {
		return err
	}
	if removed {
		s.Metrics.SessionEvent(metrics.EventRevokeOthers)
	}
	return nil
}

// RevokeDevice ends one specific session owned by the caller.
func (s *SessionService) RevokeDevice(ctx context.Context, id RefreshIdentity, deviceID string) (RevokeOutcome, error) {
	session, err := s.Store.Sessions().GetSessionByDeviceID(ctx, deviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RevokeNotFound, nil
		}
		return RevokeNotFound, err
	}

	if session.UserID != id.UserID {
		slogx.FromContext(ctx).Warn("device revocation by non-owner",
			slog.String("user_id", id.UserID), slog.String("device_id", deviceID))
		return RevokeForbidden, nil
	}

	ok, err := s.Store.Sessions().DeleteSessionByDeviceID(ctx, deviceID)
	if err != nil {
		return RevokeNotFound, err
	}
	if !ok {
		return RevokeNotFound, nil
	}

	s.Metrics.SessionEvent(metrics.EventRevoke)
	return RevokeOK, nil
}

// ListDevices returns the user's active sessions.
func (s *SessionService) ListDevices(ctx context.Context, userID string) ([]domain.Session, error) {
	sessions, err := s.Store.Sessions().ListSessionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	active := sessions[:0]
	for _, sess := range sessions {
		if sess.ExpiresAt.After(now) {
			active = append(active, sess)
		}
	}
	return active, nil
}

// issuePair mints both tokens at now and decodes the refresh token so the
// session can store exactly the iat/exp it carries.
func (s *SessionService) issuePair(userID, deviceID string, now time.Time) (domain.TokenPair, jwtx.Claims, error) {
	access, err := s.Tokens.IssueAccessToken(userID, now)
	if err != nil {
		return domain.TokenPair{}, jwtx.Claims{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.Tokens.IssueRefreshToken(userID, deviceID, now)
	if err != nil {
		return domain.TokenPair{}, jwtx.Claims{}, fmt.Errorf("issue refresh token: %w", err)
	}
	claims, err := jwtx.Decode(refresh)
	if err != nil {
		return domain.TokenPair{}, jwtx.Claims{}, fmt.Errorf("decode refresh token: %w", err)
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, claims, nil
}

func deviceTitle(userAgent string) string {
	ua := strings.TrimSpace(userAgent)
	if ua == "" {
		return UnknownDevice
	}
	if len(ua) > maxDeviceNameLen {
		ua = ua[:maxDeviceNameLen]
	}
	return ua
}
