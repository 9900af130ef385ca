package sqlite

import (
	"context"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

type postsRepo struct {
	db dbtx
}

// Blog name is joined rather than copied so renaming a blog shows up on
// every post immediately.
const postSelect = `
	SELECT p.id, p.title, p.short_description, p.content, p.blog_id, b.name, p.created_at
	FROM posts p JOIN blogs b ON b.id = p.blog_id`

var postSortColumns = map[string]string{
	"createdAt":        "p.created_at",
	"title":            "p.title",
	"shortDescription": "p.short_description",
	"content":          "p.content",
	"blogId":           "p.blog_id",
	"blogName":         "b.name",
}

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var (
		p         domain.Post
		createdAt int64
	)
	if err := row.Scan(&p.ID, &p.Title, &p.ShortDescription, &p.Content, &p.BlogID, &p.BlogName, &createdAt); err != nil {
		return domain.Post{}, err
	}
	p.CreatedAt = fromMillis(createdAt)
	return p, nil
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, blog_id, title, short_description, content, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.BlogID, p.Title, p.ShortDescription, p.Content, toMillis(p.CreatedAt))
	return err
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = ?`, id))
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *postsRepo) ListPosts(ctx context.Context, blogID string, q domain.ListQuery) (domain.Page[domain.Post], error) {
	q = q.Normalize()

	var (
		where string
		args  []any
	)
	if blogID != "" {
		where = ` WHERE p.blog_id = ?`
		args = append(args, blogID)
	}

	page := domain.Page[domain.Post]{PageNumber: q.PageNumber, PageSize: q.PageSize, Items: []domain.Post{}}
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts p JOIN blogs b ON b.id = p.blog_id`+where, args...,
	).Scan(&page.TotalCount); err != nil {
		return page, err
	}

	rows, err := r.db.QueryContext(ctx,
		postSelect+where+
			orderBy(q.SortBy, q.SortDesc, postSortColumns, "p.created_at", "p.id")+
			` LIMIT ? OFFSET ?`,
		append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return page, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return page, err
		}
		page.Items = append(page.Items, p)
	}
	return page, rows.Err()
}

func (r *postsRepo) UpdatePost(ctx context.Context, p domain.Post) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, short_description = ?, content = ?, blog_id = ? WHERE id = ?`,
		p.Title, p.ShortDescription, p.Content, p.BlogID, p.ID))
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id))
}
