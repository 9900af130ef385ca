package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/idx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
)

type UserService struct {
	Store  store.Store
	Hasher PasswordHasher
	Now    func() time.Time
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	return u, err
}

// Create adds an already-confirmed user on behalf of an administrator.
func (s *UserService) Create(ctx context.Context, in RegisterInput) (domain.User, error) {
	if err := checkAvailable(ctx, s.Store, in.Login, in.Email); err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	user := domain.User{
		ID:           idx.NewString(),
		Login:        in.Login,
		Email:        in.Email,
		PasswordHash: hash,
		IsConfirmed:  true,
		CreatedAt:    now(),
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		return domain.User{}, conflictToTaken(err)
	}

	slogx.FromContext(ctx).Info("user created by admin", slog.String("user_id", user.ID))
	return user, nil
}

func (s *UserService) List(ctx context.Context, q domain.ListQuery) (domain.Page[domain.User], error) {
	return s.Store.Users().ListUsers(ctx, q.Normalize())
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	err := s.Store.Users().DeleteUser(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
