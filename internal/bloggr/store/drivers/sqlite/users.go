package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, login, email, password_hash, is_confirmed, created_at`

var userConflicts = map[string]string{
	"users.login": "login",
	"users.email": "email",
}

var userSortColumns = map[string]string{
	"createdAt": "created_at",
	"login":     "login",
	"email":     "email",
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var (
		u         domain.User
		confirmed int
		createdAt int64
	)
	if err := row.Scan(&u.ID, &u.Login, &u.Email, &u.PasswordHash, &confirmed, &createdAt); err != nil {
		return domain.User{}, err
	}
	u.IsConfirmed = confirmed == 1
	u.CreatedAt = fromMillis(createdAt)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByLoginOrEmail(ctx context.Context, loginOrEmail string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE login = ? OR email = ? LIMIT 1`,
		loginOrEmail, loginOrEmail))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Login, u.Email, u.PasswordHash, boolToInt(u.IsConfirmed), toMillis(u.CreatedAt))
	return mapConflict(err, userConflicts)
}

func (r *usersRepo) ConfirmUser(ctx context.Context, userID string) error {
	return expectOne(r.db.ExecContext(ctx, `UPDATE users SET is_confirmed = 1 WHERE id = ?`, userID))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	return expectOne(r.db.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, newHash, userID))
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID))
}

func (r *usersRepo) ListUsers(ctx context.Context, q domain.ListQuery) (domain.Page[domain.User], error) {
	q = q.Normalize()

	var (
		where string
		args  []any
	)
	switch {
	case q.SearchLoginTerm != "" && q.SearchEmailTerm != "":
		where = ` WHERE (login LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\')`
		args = append(args, likePattern(q.SearchLoginTerm), likePattern(q.SearchEmailTerm))
	case q.SearchLoginTerm != "":
		where = ` WHERE login LIKE ? ESCAPE '\'`
		args = append(args, likePattern(q.SearchLoginTerm))
	case q.SearchEmailTerm != "":
		where = ` WHERE email LIKE ? ESCAPE '\'`
		args = append(args, likePattern(q.SearchEmailTerm))
	}

	page := domain.Page[domain.User]{PageNumber: q.PageNumber, PageSize: q.PageSize, Items: []domain.User{}}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&page.TotalCount); err != nil {
		return page, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users`+where+
			orderBy(q.SortBy, q.SortDesc, userSortColumns, "created_at", "id")+
			` LIMIT ? OFFSET ?`,
		append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return page, err
	}
	defer rows.Close()

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return page, err
		}
		page.Items = append(page.Items, u)
	}
	return page, rows.Err()
}

func (r *usersRepo) LoginExists(ctx context.Context, login string) (bool, error) {
	return exists(ctx, r.db, `SELECT 1 FROM users WHERE login = ?`, login)
}

func (r *usersRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return exists(ctx, r.db, `SELECT 1 FROM users WHERE email = ?`, email)
}

func exists(ctx context.Context, db dbtx, query string, args ...any) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}
