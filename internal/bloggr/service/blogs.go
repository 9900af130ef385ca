package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/idx"
)

type BlogInput struct {
	Name        string
	Description string
	WebsiteURL  string
}

type BlogService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *BlogService) Create(ctx context.Context, in BlogInput) (domain.Blog, error) {
	b := domain.Blog{
		ID:          idx.NewString(),
		Name:        in.Name,
		Description: in.Description,
		WebsiteURL:  in.WebsiteURL,
		CreatedAt:   clock(s.Now),
	}
	if err := s.Store.Blogs().CreateBlog(ctx, b); err != nil {
		return domain.Blog{}, err
	}
	return b, nil
}

func (s *BlogService) Get(ctx context.Context, id string) (domain.Blog, error) {
	b, err := s.Store.Blogs().GetBlogByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Blog{}, ErrBlogNotFound
	}
	return b, err
}

func (s *BlogService) List(ctx context.Context, q domain.ListQuery) (domain.Page[domain.Blog], error) {
	return s.Store.Blogs().ListBlogs(ctx, q.Normalize())
}

func (s *BlogService) Update(ctx context.Context, id string, in BlogInput) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	b.Name = in.Name
	b.Description = in.Description
	b.WebsiteURL = in.WebsiteURL

	err = s.Store.Blogs().UpdateBlog(ctx, b)
	if errors.Is(err, store.ErrNotFound) {
		return ErrBlogNotFound
	}
	return err
}

func (s *BlogService) Delete(ctx context.Context, id string) error {
	err := s.Store.Blogs().DeleteBlog(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrBlogNotFound
	}
	return err
}

func clock(now func() time.Time) time.Time {
	if now != nil {
		return now()
	}
	return time.Now()
}
