package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/fasalmbt/complainto/domain"
)

// resetTokenBytes is the entropy of a reset token before encoding.
const resetTokenBytes = 32

// PasswordResetServiceImpl implements domain.PasswordResetService
type PasswordResetServiceImpl struct {
	userRepo    domain.UserRepository
	resetRepo   domain.PasswordResetRepository
	passwordSvc domain.PasswordService
	notifier    domain.Notifier
	audit       domain.AuditLogger
	baseURL     string
	tokenTTL    time.Duration
}

// NewPasswordResetService creates a new password reset service
func NewPasswordResetService(
	userRepo domain.UserRepository,
	resetRepo domain.PasswordResetRepository,
	passwordSvc domain.PasswordService,
	notifier domain.Notifier,
	audit domain.AuditLogger,
	baseURL string,
	tokenTTL time.Duration,
) domain.PasswordResetService {
	return &PasswordResetServiceImpl{
		userRepo:    userRepo,
		resetRepo:   resetRepo,
		passwordSvc: passwordSvc,
		notifier:    notifier,
		audit:       audit,
		baseURL:     baseURL,
		tokenTTL:    tokenTTL,
	}
}

// RequestReset implements domain.PasswordResetService. An unknown email
// returns nil so the caller's acknowledgment is identical either way and
// account existence cannot be probed. If mail delivery fails the token
// row is kept; it expires on its own.
func (s *PasswordResetServiceImpl) RequestReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	reset := &domain.PasswordReset{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.tokenTTL),
	}
	if err := s.resetRepo.Create(ctx, reset); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	if err := s.notifier.SendPasswordReset(user.Email, link); err != nil {
		_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.ResetRequestedEvent, user.ID).
			WithEmail(user.Email).WithError(err))
		return domain.ErrDeliveryFailed
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.ResetRequestedEvent, user.ID).
		WithEmail(user.Email))
	return nil
}

// ResetPassword implements domain.PasswordResetService. Token consumption
// happens before the password write, so a token authorizes exactly one
// change even when presented concurrently.
func (s *PasswordResetServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	reset, err := s.resetRepo.Consume(ctx, token, time.Now().UTC())
	if err != nil {
		_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.ResetFailureEvent, 0).WithError(err))
		return err
	}

	user, err := s.userRepo.FindByID(ctx, reset.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrSecretInvalid
		}
		return err
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.ResetCompletedEvent, user.ID).
		WithEmail(user.Email))
	return nil
}

// generateResetToken returns a URL-safe token with 256 bits of entropy.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
