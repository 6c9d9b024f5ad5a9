package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fasalmbt/complainto/domain"
)

// AuthServiceImpl implements domain.AuthService
type AuthServiceImpl struct {
	userRepo      domain.UserRepository
	complaintRepo domain.ComplaintRepository
	passwordSvc   domain.PasswordService
	tokenSvc      domain.TokenService
	otpSvc        domain.OTPService
	audit         domain.AuditLogger
	accessTTL     time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo domain.UserRepository,
	complaintRepo domain.ComplaintRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	audit domain.AuditLogger,
	accessTTL time.Duration,
) domain.AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		complaintRepo: complaintRepo,
		passwordSvc:   passwordSvc,
		tokenSvc:      tokenSvc,
		otpSvc:        otpSvc,
		audit:         audit,
		accessTTL:     accessTTL,
	}
}

// Register implements domain.AuthService
func (s *AuthServiceImpl) Register(ctx context.Context, email, name, password string, isAdmin bool) (*domain.AuthResult, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.passwordSvc.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserRegistrationEvent, user.ID).
		WithEmail(user.Email))

	return s.issueSession(user)
}

// Login implements domain.AuthService
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginFailureEvent, 0).
			WithEmail(email).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginFailureEvent, user.ID).
			WithEmail(email).WithError(domain.ErrInvalidCredentials))
		return nil, domain.ErrInvalidCredentials
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.UserLoginEvent, user.ID).
		WithEmail(user.Email))

	return s.issueSession(user)
}

// Authenticate implements domain.AuthService. Every failure mode (bad or
// expired token, missing subject, unknown user) collapses to
// domain.ErrUnauthorized.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokenSvc.Validate(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// ChangePassword implements domain.AuthService
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID uint, current, newPassword, confirm string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, current) {
		return domain.ErrPasswordIncorrect
	}
	if newPassword != confirm {
		return domain.ErrPasswordMismatch
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.PasswordChangeEvent, user.ID).
		WithEmail(user.Email))
	return nil
}

// GetProfile implements domain.AuthService
func (s *AuthServiceImpl) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateProfile implements domain.AuthService
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID uint, name, email string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if email != user.Email {
		if other, err := s.userRepo.FindByEmail(ctx, email); err == nil && other != nil && other.ID != userID {
			return domain.ErrEmailTaken
		}
	}

	user.Name = name
	user.Email = email
	return s.userRepo.Update(ctx, user)
}

// DeleteAccount implements domain.AuthService. Deletion is gated on the
// account password plus a live OTP for the account email, and cascades to
// the user's complaints.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, userID uint, password, otp string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.passwordSvc.Verify(user.PasswordHash, password) {
		return domain.ErrPasswordIncorrect
	}

	if _, err := s.otpSvc.Verify(ctx, user.Email, otp); err != nil {
		return err
	}

	if err := s.complaintRepo.DeleteByUser(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete complaints: %w", err)
	}
	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.AccountDeletionEvent, user.ID).
		WithEmail(user.Email))
	return nil
}

func (s *AuthServiceImpl) issueSession(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokenSvc.Generate(user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &domain.AuthResult{
		User:        user,
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.accessTTL.Seconds()),
	}, nil
}
