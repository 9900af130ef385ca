package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

type likesRepo struct {
	db dbtx
}

func (r *likesRepo) SetLike(ctx context.Context, targetID, userID string, status domain.LikeStatus, at time.Time) error {
	if status == domain.LikeNone {
		_, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE target_id = ? AND user_id = ?`, targetID, userID)
		return err
	}

	// Re-sending the same reaction keeps its original timestamp so it does
	// not jump to the top of the newest likes.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO likes (target_id, user_id, status, added_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (target_id, user_id) DO UPDATE SET
			added_at = CASE WHEN likes.status = excluded.status THEN likes.added_at ELSE excluded.added_at END,
			status   = excluded.status`,
		targetID, userID, string(status), toMillis(at))
	return err
}

func (r *likesRepo) GetLikesSummary(ctx context.Context, targetID, viewerID string, newest int) (domain.LikesSummary, error) {
	sum := domain.LikesSummary{MyStatus: domain.LikeNone, Newest: []domain.LikeDetail{}}

	err := r.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'Like' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'Dislike' THEN 1 ELSE 0 END), 0)
		FROM likes WHERE target_id = ?`, targetID,
	).Scan(&sum.Likes, &sum.Dislikes)
	if err != nil {
		return sum, err
	}

	if viewerID != "" {
		var status string
		err := r.db.QueryRowContext(ctx,
			`SELECT status FROM likes WHERE target_id = ? AND user_id = ?`, targetID, viewerID,
		).Scan(&status)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return sum, err
		default:
			sum.MyStatus = domain.LikeStatus(status)
		}
	}

	if newest <= 0 {
		return sum, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT l.user_id, u.login, l.added_at
		FROM likes l JOIN users u ON u.id = l.user_id
		WHERE l.target_id = ? AND l.status = 'Like'
		ORDER BY l.added_at DESC, l.user_id
		LIMIT ?`, targetID, newest)
	if err != nil {
		return sum, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			d       domain.LikeDetail
			addedAt int64
		)
		if err := rows.Scan(&d.UserID, &d.UserLogin, &addedAt); err != nil {
			return sum, err
		}
		d.AddedAt = fromMillis(addedAt)
		sum.Newest = append(sum.Newest, d)
	}
	return sum, rows.Err()
}
