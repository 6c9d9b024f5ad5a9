package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/fasalmbt/complainto/domain"
)

// OTPServiceImpl implements domain.OTPService. Codes live in the
// relational store; issuing a new code first invalidates every
// outstanding unconsumed code for the email, so at most one is live at
// any time.
type OTPServiceImpl struct {
	otpRepo  domain.EmailOTPRepository
	notifier domain.Notifier
	audit    domain.AuditLogger
	ttl      time.Duration
}

// NewOTPService creates a new OTP service
func NewOTPService(otpRepo domain.EmailOTPRepository, notifier domain.Notifier, audit domain.AuditLogger, ttl time.Duration) domain.OTPService {
	return &OTPServiceImpl{
		otpRepo:  otpRepo,
		notifier: notifier,
		audit:    audit,
		ttl:      ttl,
	}
}

// Issue implements domain.OTPService. If delivery fails the persisted
// row is kept; the code simply ages out unverified.
func (s *OTPServiceImpl) Issue(ctx context.Context, email string) (*domain.EmailOTP, error) {
	if err := s.otpRepo.DeleteUnused(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to invalidate prior codes: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	otp := &domain.EmailOTP{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}
	if err := s.otpRepo.Create(ctx, otp); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := s.notifier.SendOTP(email, code); err != nil {
		_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPIssuedEvent, 0).
			WithEmail(email).WithError(err))
		return nil, domain.ErrDeliveryFailed
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPIssuedEvent, 0).WithEmail(email))
	return otp, nil
}

// Verify implements domain.OTPService. The repository consumes the code
// atomically; not-found, expired and already-used all surface as the one
// domain.ErrSecretInvalid.
func (s *OTPServiceImpl) Verify(ctx context.Context, email, code string) (*domain.EmailOTP, error) {
	otp, err := s.otpRepo.Consume(ctx, email, code, time.Now().UTC())
	if err != nil {
		_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPFailureEvent, 0).
			WithEmail(email).WithError(err))
		return nil, err
	}

	_ = s.audit.LogEvent(ctx, domain.NewAuditEvent(domain.OTPVerifiedEvent, 0).WithEmail(email))
	return otp, nil
}

// generateCode draws a uniformly random 6-digit decimal code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
