package sqlite

import (
	"context"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

type commentsRepo struct {
	db dbtx
}

const commentSelect = `
	SELECT c.id, c.post_id, c.content, c.user_id, u.login, c.created_at
	FROM comments c JOIN users u ON u.id = c.user_id`

var commentSortColumns = map[string]string{
	"createdAt": "c.created_at",
	"content":   "c.content",
}

func scanComment(row interface{ Scan(...any) error }) (domain.Comment, error) {
	var (
		c         domain.Comment
		createdAt int64
	)
	if err := row.Scan(&c.ID, &c.PostID, &c.Content, &c.UserID, &c.UserLogin, &createdAt); err != nil {
		return domain.Comment{}, err
	}
	c.CreatedAt = fromMillis(createdAt)
	return c, nil
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, post_id, user_id, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.PostID, c.UserID, c.Content, toMillis(c.CreatedAt))
	return err
}

func (r *commentsRepo) GetCommentByID(ctx context.Context, id string) (domain.Comment, error) {
	c, err := scanComment(r.db.QueryRowContext(ctx, commentSelect+` WHERE c.id = ?`, id))
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return c, nil
}

func (r *commentsRepo) ListCommentsByPost(ctx context.Context, postID string, q domain.ListQuery) (domain.Page[domain.Comment], error) {
	q = q.Normalize()

	page := domain.Page[domain.Comment]{PageNumber: q.PageNumber, PageSize: q.PageSize, Items: []domain.Comment{}}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE post_id = ?`, postID,
	).Scan(&page.TotalCount); err != nil {
		return page, err
	}

	rows, err := r.db.QueryContext(ctx,
		commentSelect+` WHERE c.post_id = ?`+
			orderBy(q.SortBy, q.SortDesc, commentSortColumns, "c.created_at", "c.id")+
			` LIMIT ? OFFSET ?`,
		postID, q.PageSize, q.Offset())
	if err != nil {
		return page, err
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return page, err
		}
		page.Items = append(page.Items, c)
	}
	return page, rows.Err()
}

func (r *commentsRepo) UpdateCommentContent(ctx context.Context, id, content string) error {
	return expectOne(r.db.ExecContext(ctx, `UPDATE comments SET content = ? WHERE id = ?`, content, id))
}

func (r *commentsRepo) DeleteComment(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id))
}
