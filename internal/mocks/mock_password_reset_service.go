package mocks

import (
	"context"

	"github.com/fasalmbt/complainto/domain"
)

// MockPasswordResetService implements domain.PasswordResetService interface for testing
type MockPasswordResetService struct {
	RequestResetFunc  func(ctx context.Context, email string) error
	ResetPasswordFunc func(ctx context.Context, token, newPassword string) error
}

// NewMockPasswordResetService creates a new MockPasswordResetService with default behaviors
func NewMockPasswordResetService() *MockPasswordResetService {
	return &MockPasswordResetService{}
}

// RequestReset issues a reset token
func (m *MockPasswordResetService) RequestReset(ctx context.Context, email string) error {
	if m.RequestResetFunc != nil {
		return m.RequestResetFunc(ctx, email)
	}
	return nil
}

// ResetPassword applies a password reset
func (m *MockPasswordResetService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return domain.ErrSecretInvalid
}

// Compile-time interface compliance verification
var _ domain.PasswordResetService = (*MockPasswordResetService)(nil)
