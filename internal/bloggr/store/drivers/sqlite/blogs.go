package sqlite

import (
	"context"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
)

type blogsRepo struct {
	db dbtx
}

const blogColumns = `id, name, description, website_url, is_membership, created_at`

var blogSortColumns = map[string]string{
	"createdAt":   "created_at",
	"name":        "name",
	"description": "description",
	"websiteUrl":  "website_url",
}

func scanBlog(row interface{ Scan(...any) error }) (domain.Blog, error) {
	var (
		b          domain.Blog
		membership int
		createdAt  int64
	)
	if err := row.Scan(&b.ID, &b.Name, &b.Description, &b.WebsiteURL, &membership, &createdAt); err != nil {
		return domain.Blog{}, err
	}
	b.IsMembership = membership == 1
	b.CreatedAt = fromMillis(createdAt)
	return b, nil
}

func (r *blogsRepo) CreateBlog(ctx context.Context, b domain.Blog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO blogs (`+blogColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Name, b.Description, b.WebsiteURL, boolToInt(b.IsMembership), toMillis(b.CreatedAt))
	return err
}

func (r *blogsRepo) GetBlogByID(ctx context.Context, id string) (domain.Blog, error) {
	b, err := scanBlog(r.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = ?`, id))
	if err != nil {
		return domain.Blog{}, mapNotFound(err)
	}
	return b, nil
}

func (r *blogsRepo) ListBlogs(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Blog], error) {
	q = q.Normalize()

	var (
		where string
		args  []any
	)
	if q.SearchNameTerm != "" {
		where = ` WHERE name LIKE ? ESCAPE '\'`
		args = append(args, likePattern(q.SearchNameTerm))
	}

	page := domain.Page[domain.Blog]{PageNumber: q.PageNumber, PageSize: q.PageSize, Items: []domain.Blog{}}
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blogs`+where, args...).Scan(&page.TotalCount); err != nil {
		return page, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+blogColumns+` FROM blogs`+where+
			orderBy(q.SortBy, q.SortDesc, blogSortColumns, "created_at", "id")+
			` LIMIT ? OFFSET ?`,
		append(args, q.PageSize, q.Offset())...)
	if err != nil {
		return page, err
	}
	defer rows.Close()

	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return page, err
		}
		page.Items = append(page.Items, b)
	}
	return page, rows.Err()
}

func (r *blogsRepo) UpdateBlog(ctx context.Context, b domain.Blog) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE blogs SET name = ?, description = ?, website_url = ? WHERE id = ?`,
		b.Name, b.Description, b.WebsiteURL, b.ID))
}

// DeleteBlog cascades to the blog's posts, their comments and likes.
func (r *blogsRepo) DeleteBlog(ctx context.Context, id string) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id))
}
