package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/idx"
)

// NewestLikes is how many recent likes a post view carries.
const NewestLikes = 3

type PostInput struct {
	Title            string
	ShortDescription string
	Content          string
	BlogID           string
}

// PostWithLikes is a post as seen by one viewer.
type PostWithLikes struct {
	Post  domain.Post
	Likes domain.LikesSummary
}

type PostService struct {
	Store store.Store
	Now   func() time.Time
}

// Create adds a post to an existing blog.
func (s *PostService) Create(ctx context.Context, in PostInput) (PostWithLikes, error) {
	blog, err := s.Store.Blogs().GetBlogByID(ctx, in.BlogID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PostWithLikes{}, ErrBlogNotFound
		}
		return PostWithLikes{}, err
	}

	p := domain.Post{
		ID:               idx.NewString(),
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
		CreatedAt:        clock(s.Now),
	}
	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		return PostWithLikes{}, err
	}
	return PostWithLikes{Post: p, Likes: domain.LikesSummary{MyStatus: domain.LikeNone, Newest: []domain.LikeDetail{}}}, nil
}

// Get returns the post with reactions from viewerID's point of view;
// viewerID is empty for anonymous callers.
func (s *PostService) Get(ctx context.Context, id, viewerID string) (PostWithLikes, error) {
	p, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PostWithLikes{}, ErrPostNotFound
		}
		return PostWithLikes{}, err
	}
	return s.withLikes(ctx, p, viewerID)
}

// List pages through every post, or through blogID's posts when set.
func (s *PostService) List(ctx context.Context, blogID string, q domain.ListQuery, viewerID string) (domain.Page[PostWithLikes], error) {
	if blogID != "" {
		if _, err := s.Store.Blogs().GetBlogByID(ctx, blogID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return domain.Page[PostWithLikes]{}, ErrBlogNotFound
			}
			return domain.Page[PostWithLikes]{}, err
		}
	}

	page, err := s.Store.Posts().ListPosts(ctx, blogID, q.Normalize())
	if err != nil {
		return domain.Page[PostWithLikes]{}, err
	}

	out := domain.Page[PostWithLikes]{
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		Items:      make([]PostWithLikes, 0, len(page.Items)),
	}
	for _, p := range page.Items {
		pw, err := s.withLikes(ctx, p, viewerID)
		if err != nil {
			return domain.Page[PostWithLikes]{}, err
		}
		out.Items = append(out.Items, pw)
	}
	return out, nil
}

// Update rewrites a post. The target blog must exist.
func (s *PostService) Update(ctx context.Context, id string, in PostInput) error {
	p, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	if in.BlogID != "" && in.BlogID != p.BlogID {
		if _, err := s.Store.Blogs().GetBlogByID(ctx, in.BlogID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrBlogNotFound
			}
			return err
		}
		p.BlogID = in.BlogID
	}
	p.Title = in.Title
	p.ShortDescription = in.ShortDescription
	p.Content = in.Content

	err = s.Store.Posts().UpdatePost(ctx, p)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	err := s.Store.Posts().DeletePost(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}

// SetLikeStatus records userID's reaction to the post.
func (s *PostService) SetLikeStatus(ctx context.Context, postID, userID string, status domain.LikeStatus) error {
	if _, err := s.Store.Posts().GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return s.Store.Likes().SetLike(ctx, postID, userID, status, clock(s.Now))
}

func (s *PostService) withLikes(ctx context.Context, p domain.Post, viewerID string) (PostWithLikes, error) {
	likes, err := s.Store.Likes().GetLikesSummary(ctx, p.ID, viewerID, NewestLikes)
	if err != nil {
		return PostWithLikes{}, err
	}
	return PostWithLikes{Post: p, Likes: likes}, nil
}
