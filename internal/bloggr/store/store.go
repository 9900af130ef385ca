package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ConflictError reports which unique field a write collided on. It matches
// ErrAlreadyExists under errors.Is.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string { return "store: " + e.Field + " already exists" }

func (e *ConflictError) Is(target error) bool { return target == ErrAlreadyExists }

// Store is the root data access interface. Drivers implement it and expose
// sub-repositories so transactions stay explicit: a Tx hands out the same
// repositories bound to the transaction.
type Store interface {
	Users() Users
	Sessions() Sessions
	Codes() Codes
	Blogs() Blogs
	Posts() Posts
	Comments() Comments
	Likes() Likes

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// DeleteAll wipes every table. Backs the testing endpoint.
	DeleteAll(ctx context.Context) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByLoginOrEmail matches either column exactly.
	GetUserByLoginOrEmail(ctx context.Context, loginOrEmail string) (domain.User, error)

	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user. A duplicate login or email yields a
	// *ConflictError naming the field.
	CreateUser(ctx context.Context, u domain.User) error

	ConfirmUser(ctx context.Context, userID string) error
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// DeleteUser cascades to sessions, codes, comments and likes.
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers filters by login OR email (case-insensitive contains).
	ListUsers(ctx context.Context, q domain.ListQuery) (domain.Page[domain.User], error)

	LoginExists(ctx context.Context, login string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type Sessions interface {
	// CreateSession stores a session; the id is generated by the app.
	CreateSession(ctx context.Context, s domain.Session) error

	GetSessionByDeviceID(ctx context.Context, deviceID string) (domain.Session, error)

	// ListSessionsByUser returns the user's sessions, most recently active first.
	ListSessionsByUser(ctx context.Context, userID string) ([]domain.Session, error)

	// DeleteSessionByDeviceID reports whether a row was removed.
	DeleteSessionByDeviceID(ctx context.Context, deviceID string) (bool, error)

	// DeleteSessionsExceptDevice removes every session of the user but
	// keepDeviceID and reports whether at least one row was removed.
	DeleteSessionsExceptDevice(ctx context.Context, userID, keepDeviceID string) (bool, error)

	// UpdateSessionIatExp moves a session to a new iat/exp only while its
	// stored iat still equals prevIat. It reports whether exactly one row
	// changed; false means the session is gone or was rotated concurrently.
	UpdateSessionIatExp(ctx context.Context, userID, deviceID string, prevIat, iat, exp time.Time) (bool, error)

	DeleteSessionsByUser(ctx context.Context, userID string) error

	// DeleteExpiredSessions returns the number of rows removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

type Codes interface {
	// UpsertCode replaces any existing code of the same purpose for the user.
	UpsertCode(ctx context.Context, c domain.ConfirmationCode) error

	// GetActiveCode returns an unused, unexpired code by purpose and hash.
	GetActiveCode(ctx context.Context, purpose domain.CodePurpose, codeHash string, now time.Time) (domain.ConfirmationCode, error)

	MarkCodeUsed(ctx context.Context, userID string, purpose domain.CodePurpose, at time.Time) error

	// DeleteExpiredCodes removes expired and used codes.
	DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error)
}

type Blogs interface {
	CreateBlog(ctx context.Context, b domain.Blog) error
	GetBlogByID(ctx context.Context, id string) (domain.Blog, error)
	ListBlogs(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Blog], error)
	UpdateBlog(ctx context.Context, b domain.Blog) error
	DeleteBlog(ctx context.Context, id string) error
}

type Posts interface {
	CreatePost(ctx context.Context, p domain.Post) error
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts lists every post, or only blogID's posts when it is non-empty.
	ListPosts(ctx context.Context, blogID string, q domain.ListQuery) (domain.Page[domain.Post], error)

	UpdatePost(ctx context.Context, p domain.Post) error
	DeletePost(ctx context.Context, id string) error
}

type Comments interface {
	CreateComment(ctx context.Context, c domain.Comment) error
	GetCommentByID(ctx context.Context, id string) (domain.Comment, error)
	ListCommentsByPost(ctx context.Context, postID string, q domain.ListQuery) (domain.Page[domain.Comment], error)
	UpdateCommentContent(ctx context.Context, id, content string) error
	DeleteComment(ctx context.Context, id string) error
}

// Likes stores one reaction per (target, user). Targets are posts or comments.
type Likes interface {
	// SetLike upserts the reaction; LikeNone removes it.
	SetLike(ctx context.Context, targetID, userID string, status domain.LikeStatus, at time.Time) error

	// GetLikesSummary aggregates counts, the viewer's own status (viewerID
	// may be empty) and up to newest most recent likes.
	GetLikesSummary(ctx context.Context, targetID, viewerID string, newest int) (domain.LikesSummary, error)
}
