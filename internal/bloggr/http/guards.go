package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/service"
	"github.com/aussiebroadwan/bloggr/pkg/blogsdk"
	"github.com/aussiebroadwan/bloggr/pkg/httpx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
)

type refreshIdentityKey struct{}

// RequireRefreshToken admits a request only when its refreshToken cookie
// resolves to the device's current session, and attaches that session's
// identity.
func RequireRefreshToken(sessions *service.SessionService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(blogsdk.RefreshTokenCookie)
			if err != nil || cookie.Value == "" {
				blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
				return
			}

			id, err := sessions.ResolveRefreshToken(ctx, cookie.Value)
			if err != nil {
				slogx.FromContext(ctx).Debug("refresh token rejected", "err", err)
				blogsdk.WriteStatus(w, r, http.StatusUnauthorized)
				return
			}

			ctx = context.WithValue(ctx, refreshIdentityKey{}, id)
			ctx = httpx.WithIdentity(ctx, httpx.Known(id.UserID))
			ctx = slogx.With(ctx, "user_id", id.UserID, "device_id", id.DeviceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func refreshIdentityFrom(ctx context.Context) (service.RefreshIdentity, bool) {
	id, ok := ctx.Value(refreshIdentityKey{}).(service.RefreshIdentity)
	return id, ok
}

// cookieWriter sets and clears the refresh token cookie.
type cookieWriter struct {
	Secure bool
	TTL    time.Duration
}

func (c cookieWriter) set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     blogsdk.RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (c cookieWriter) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     blogsdk.RefreshTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}
