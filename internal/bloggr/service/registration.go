package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/aussiebroadwan/bloggr/internal/bloggr/domain"
	"github.com/aussiebroadwan/bloggr/internal/bloggr/store"
	"github.com/aussiebroadwan/bloggr/pkg/cryptox"
	"github.com/aussiebroadwan/bloggr/pkg/idx"
	"github.com/aussiebroadwan/bloggr/pkg/mailx"
	"github.com/aussiebroadwan/bloggr/pkg/slogx"
	"github.com/google/uuid"
)

const (
	DefaultCodeTTL = time.Hour

	subjectRegistration = "Registration confirmation"
	subjectRecovery     = "Password recovery"
)

type RegisterInput struct {
	Login    string
	Password string
	Email    string
}

// RegistrationService covers self-service sign-up, email confirmation and
// password recovery. Codes are emailed in clear and stored as fingerprints.
type RegistrationService struct {
	Store  store.Store
	Hasher PasswordHasher
	Mailer mailx.Sender

	CodeTTL         time.Duration
	ConfirmationURL string
	RecoveryURL     string

	Now func() time.Time
}

func (s *RegistrationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *RegistrationService) codeTTL() time.Duration {
	if s.CodeTTL > 0 {
		return s.CodeTTL
	}
	return DefaultCodeTTL
}

// Register creates an unconfirmed user and emails a confirmation code.
// Duplicate login and email are reported together when both collide.
func (s *RegistrationService) Register(ctx context.Context, in RegisterInput) error {
	l := slogx.FromContext(ctx)

	if err := checkAvailable(ctx, s.Store, in.Login, in.Email); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := domain.User{
		ID:           idx.NewString(),
		Login:        in.Login,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	code := uuid.NewString()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return conflictToTaken(err)
		}
		return tx.Codes().UpsertCode(ctx, s.newCode(user.ID, domain.PurposeRegistration, code, now))
	})
	if err != nil {
		return err
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	s.deliver(ctx, user.Email, subjectRegistration, confirmationBody(s.ConfirmationURL, "code", code))
	return nil
}

// Confirm marks the code's user confirmed and consumes the code.
func (s *RegistrationService) Confirm(ctx context.Context, code string) error {
	now := s.now()
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		c, err := tx.Codes().GetActiveCode(ctx, domain.PurposeRegistration, cryptox.FingerprintToken(code), now)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidCode
			}
			return err
		}

		user, err := tx.Users().GetUserByID(ctx, c.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidCode
			}
			return err
		}
		if user.IsConfirmed {
			return ErrAlreadyConfirmed
		}

		if err := tx.Users().ConfirmUser(ctx, user.ID); err != nil {
			return err
		}
		if err := tx.Codes().MarkCodeUsed(ctx, user.ID, domain.PurposeRegistration, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidCode
			}
			return err
		}
		return nil
	})
}

// Resend replaces the registration code of an unconfirmed user and
// emails the new one.
func (s *RegistrationService) Resend(ctx context.Context, email string) error {
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUnknownEmail
		}
		return err
	}
	if user.IsConfirmed {
		return ErrAlreadyConfirmed
	}

	code := uuid.NewString()
	if err := s.Store.Codes().UpsertCode(ctx, s.newCode(user.ID, domain.PurposeRegistration, code, s.now())); err != nil {
		return err
	}

	s.deliver(ctx, user.Email, subjectRegistration, confirmationBody(s.ConfirmationURL, "code", code))
	return nil
}

// RecoverPassword emails a recovery code when the address is known. An
// unknown address is not an error so callers cannot enumerate accounts.
func (s *RegistrationService) RecoverPassword(ctx context.Context, email string) error {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Debug("password recovery for unknown email")
			return nil
		}
		return err
	}

	code := uuid.NewString()
	if err := s.Store.Codes().UpsertCode(ctx, s.newCode(user.ID, domain.PurposeRecovery, code, s.now())); err != nil {
		return err
	}

	s.deliver(ctx, user.Email, subjectRecovery, confirmationBody(s.RecoveryURL, "recoveryCode", code))
	return nil
}

// SetNewPassword replaces the password of the recovery code's user and
// ends all of that user's sessions.
func (s *RegistrationService) SetNewPassword(ctx context.Context, newPassword, recoveryCode string) error {
	now := s.now()

	c, err := s.Store.Codes().GetActiveCode(ctx, domain.PurposeRecovery, cryptox.FingerprintToken(recoveryCode), now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidCode
		}
		return err
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Codes().MarkCodeUsed(ctx, c.UserID, domain.PurposeRecovery, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidCode
			}
			return err
		}
		if err := tx.Users().UpdatePasswordHash(ctx, c.UserID, hash); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidCode
			}
			return err
		}
		return tx.Sessions().DeleteSessionsByUser(ctx, c.UserID)
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password reset", slog.String("user_id", c.UserID))
	return nil
}

func (s *RegistrationService) newCode(userID string, purpose domain.CodePurpose, code string, now time.Time) domain.ConfirmationCode {
	return domain.ConfirmationCode{
		UserID:    userID,
		Purpose:   purpose,
		CodeHash:  cryptox.FingerprintToken(code),
		ExpiresAt: now.Add(s.codeTTL()),
		CreatedAt: now,
	}
}

// deliver sends mail and only logs failures; the user can ask for a resend.
func (s *RegistrationService) deliver(ctx context.Context, to, subject, body string) {
	if s.Mailer == nil {
		return
	}
	if err := s.Mailer.Send(ctx, to, subject, body); err != nil {
		slogx.FromContext(ctx).Error("email delivery failed",
			slog.String("subject", subject), slog.Any("error", err))
	}
}

func confirmationBody(base, param, code string) string {
	link := base + "?" + url.Values{param: {code}}.Encode()
	return "Thank you for your registration.\n\n" +
		"To finish, follow the link below:\n" + link + "\n"
}

// checkAvailable reports ErrLoginTaken, ErrEmailTaken or both joined.
func checkAvailable(ctx context.Context, st store.Store, login, email string) error {
	loginTaken, err := st.Users().LoginExists(ctx, login)
	if err != nil {
		return err
	}
	emailTaken, err := st.Users().EmailExists(ctx, email)
	if err != nil {
		return err
	}

	var errs []error
	if loginTaken {
		errs = append(errs, ErrLoginTaken)
	}
	if emailTaken {
		errs = append(errs, ErrEmailTaken)
	}
	return errors.Join(errs...)
}

// conflictToTaken maps a unique-index collision that slipped past
// checkAvailable onto the matching service error.
func conflictToTaken(err error) error {
	var ce *store.ConflictError
	if errors.As(err, &ce) {
		switch ce.Field {
		case "login":
			return ErrLoginTaken
		case "email":
			return ErrEmailTaken
		}
	}
	return err
}
