package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/idx"
)

// CommentWithLikes is a comment as seen by one viewer. Likes.Newest is
// always empty for comments.
type CommentWithLikes struct {
	Comment domain.Comment
	Likes   domain.LikesSummary
}

type CommentService struct {
	Store store.Store
	Now   func() time.Time
}

func (s *CommentService) Create(ctx context.Context, postID, userID, content string) (CommentWithLikes, error) {
	if _, err := s.Store.Posts().GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CommentWithLikes{}, ErrPostNotFound
		}
		return CommentWithLikes{}, err
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CommentWithLikes{}, ErrUserNotFound
		}
		return CommentWithLikes{}, err
	}

	c := domain.Comment{
		ID:        idx.NewString(),
		PostID:    postID,
		Content:   content,
		UserID:    user.ID,
		UserLogin: user.Login,
		CreatedAt: clock(s.Now),
	}
	if err := s.Store.Comments().CreateComment(ctx, c); err != nil {
		return CommentWithLikes{}, err
	}
	return CommentWithLikes{Comment: c, Likes: domain.LikesSummary{MyStatus: domain.LikeNone}}, nil
}

func (s *CommentService) Get(ctx context.Context, id, viewerID string) (CommentWithLikes, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return CommentWithLikes{}, err
	}
	return s.withLikes(ctx, c, viewerID)
}

func (s *CommentService) ListByPost(ctx context.Context, postID string, q domain.ListQuery, viewerID string) (domain.Page[CommentWithLikes], error) {
	if _, err := s.Store.Posts().GetPostByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Page[CommentWithLikes]{}, ErrPostNotFound
		}
		return domain.Page[CommentWithLikes]{}, err
	}

	page, err := s.Store.Comments().ListCommentsByPost(ctx, postID, q.Normalize())
	if err != nil {
		return domain.Page[CommentWithLikes]{}, err
	}

	out := domain.Page[CommentWithLikes]{
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		Items:      make([]CommentWithLikes, 0, len(page.Items)),
	}
	for _, c := range page.Items {
		cw, err := s.withLikes(ctx, c, viewerID)
		if err != nil {
			return domain.Page[CommentWithLikes]{}, err
		}
		out.Items = append(out.Items, cw)
	}
	return out, nil
}

// Update replaces the content of a comment written by userID.
func (s *CommentService) Update(ctx context.Context, id, userID, content string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	err := s.Store.Comments().UpdateCommentContent(ctx, id, content)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCommentNotFound
	}
	return err
}

// Delete removes a comment written by userID.
func (s *CommentService) Delete(ctx context.Context, id, userID string) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	err := s.Store.Comments().DeleteComment(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCommentNotFound
	}
	return err
}

func (s *CommentService) SetLikeStatus(ctx context.Context, commentID, userID string, status domain.LikeStatus) error {
	if _, err := s.get(ctx, commentID); err != nil {
		return err
	}
	return s.Store.Likes().SetLike(ctx, commentID, userID, status, clock(s.Now))
}

func (s *CommentService) get(ctx context.Context, id string) (domain.Comment, error) {
	c, err := s.Store.Comments().GetCommentByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Comment{}, ErrCommentNotFound
	}
	return c, err
}

func (s *CommentService) owned(ctx context.Context, id, userID string) (domain.Comment, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return domain.Comment{}, err
	}
	if c.UserID != userID {
		return domain.Comment{}, ErrNotCommentOwner
	}
	return c, nil
}

func (s *CommentService) withLikes(ctx context.Context, c domain.Comment, viewerID string) (CommentWithLikes, error) {
	likes, err := s.Store.Likes().GetLikesSummary(ctx, c.ID, viewerID, 0)
	if err != nil {
		return CommentWithLikes{}, err
	}
	return CommentWithLikes{Comment: c, Likes: likes}, nil
}
