package mocks

import (
	"context"
	"time"

	"github.com/fasalmbt/complainto/domain"
)

// MockEmailOTPRepository implements domain.EmailOTPRepository for testing
type MockEmailOTPRepository struct {
	CreateFunc       func(ctx context.Context, otp *domain.EmailOTP) error
	DeleteUnusedFunc func(ctx context.Context, email string) error
	ConsumeFunc      func(ctx context.Context, email, code string, now time.Time) (*domain.EmailOTP, error)
}

// NewMockEmailOTPRepository creates a new MockEmailOTPRepository with default behaviors
func NewMockEmailOTPRepository() *MockEmailOTPRepository {
	return &MockEmailOTPRepository{}
}

// Create persists a code
func (m *MockEmailOTPRepository) Create(ctx context.Context, otp *domain.EmailOTP) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, otp)
	}
	return nil
}

// DeleteUnused removes outstanding unconsumed codes for an email
func (m *MockEmailOTPRepository) DeleteUnused(ctx context.Context, email string) error {
	if m.DeleteUnusedFunc != nil {
		return m.DeleteUnusedFunc(ctx, email)
	}
	return nil
}

// Consume atomically marks a code used
func (m *MockEmailOTPRepository) Consume(ctx context.Context, email, code string, now time.Time) (*domain.EmailOTP, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, email, code, now)
	}
	return nil, domain.ErrSecretInvalid
}

// Compile-time interface compliance verification
var _ domain.EmailOTPRepository = (*MockEmailOTPRepository)(nil)
