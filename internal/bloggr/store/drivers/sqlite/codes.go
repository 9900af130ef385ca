package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

type codesRepo struct {
	db dbtx
}

func (r *codesRepo) UpsertCode(ctx context.Context, c domain.ConfirmationCode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO confirmation_codes (user_id, purpose, code_hash, expires_at, used_at, created_at)
		VALUES (?, ?, ?, ?, NULL, ?)
		ON CONFLICT (user_id, purpose) DO UPDATE SET
			code_hash  = excluded.code_hash,
			expires_at = excluded.expires_at,
			used_at    = NULL,
			created_at = excluded.created_at`,
		c.UserID, string(c.Purpose), c.CodeHash, toMillis(c.ExpiresAt), toMillis(c.CreatedAt))
	return err
}

func (r *codesRepo) GetActiveCode(ctx context.Context, purpose domain.CodePurpose, codeHash string, now time.Time) (domain.ConfirmationCode, error) {
	var (
		c                    domain.ConfirmationCode
		p                    string
		expiresAt, createdAt int64
		usedAt               sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, purpose, code_hash, expires_at, used_at, created_at
		FROM confirmation_codes
		WHERE purpose = ? AND code_hash = ? AND used_at IS NULL AND expires_at > ?`,
		string(purpose), codeHash, toMillis(now),
	).Scan(&c.UserID, &p, &c.CodeHash, &expiresAt, &usedAt, &createdAt)
	if err != nil {
		return domain.ConfirmationCode{}, mapNotFound(err)
	}

	c.Purpose = domain.CodePurpose(p)
	c.ExpiresAt = fromMillis(expiresAt)
	c.CreatedAt = fromMillis(createdAt)
	if usedAt.Valid {
		t := fromMillis(usedAt.Int64)
		c.UsedAt = &t
	}
	return c, nil
}

func (r *codesRepo) MarkCodeUsed(ctx context.Context, userID string, purpose domain.CodePurpose, at time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE confirmation_codes SET used_at = ? WHERE user_id = ? AND purpose = ? AND used_at IS NULL`,
		toMillis(at), userID, string(purpose)))
}

func (r *codesRepo) DeleteExpiredCodes(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM confirmation_codes WHERE expires_at <= ? OR used_at IS NOT NULL`, toMillis(now))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func affected(res sql.Result, err error) (bool, error) {
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
