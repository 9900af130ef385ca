package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyIdentity ctxKey = "identity"
	CtxKeyClaims   ctxKey = "claims"
	CtxKeyClientIP ctxKey = "client_ip"
)

// Identity is the outcome of optional authentication: either a resolved
// user or explicitly nobody.
type Identity struct {
	UserID  string
	Present bool
}

// Anonymous is the identity attached when no valid token was presented.
var Anonymous = Identity{}

// Known returns the identity of an authenticated user.
func Known(userID string) Identity {
	return Identity{UserID: userID, Present: true}
}

// WithIdentity stores id in ctx. A present identity also populates
// CtxKeyUserID so per-user rate limiting sees it.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = context.WithValue(ctx, CtxKeyIdentity, id)
	if id.Present {
		ctx = context.WithValue(ctx, CtxKeyUserID, id.UserID)
	}
	return ctx
}

// IdentityFromContext returns the identity attached by the authentication
// middlewares, or Anonymous when none ran.
func IdentityFromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(CtxKeyIdentity).(Identity); ok {
		return id
	}
	return Anonymous
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id := IdentityFromContext(ctx)
	return id.UserID, id.Present
}
