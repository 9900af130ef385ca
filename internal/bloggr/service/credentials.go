package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
)

// PasswordHasher is the one-way hash-and-compare capability.
// *cryptox.PasswordHasher implements it.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) error
}

type CredentialService struct {
	Store  store.Store
	Hasher PasswordHasher
}

// Verify resolves loginOrEmail and checks the password. An unknown account
// and a wrong password both return ErrInvalidCredentials.
func (s *CredentialService) Verify(ctx context.Context, loginOrEmail, password string) (string, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByLoginOrEmail(ctx, loginOrEmail)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		l.Info("password verification failed", slog.String("user_id", user.ID))
		return "", ErrInvalidCredentials
	}

	return user.ID, nil
}
