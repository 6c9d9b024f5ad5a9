package mocks

import (
	"context"
	"time"

	"github.com/fasalmbt/complainto/domain"
)

// MockPasswordResetRepository implements domain.PasswordResetRepository for testing
type MockPasswordResetRepository struct {
	CreateFunc  func(ctx context.Context, reset *domain.PasswordReset) error
	ConsumeFunc func(ctx context.Context, token string, now time.Time) (*domain.PasswordReset, error)
}

// NewMockPasswordResetRepository creates a new MockPasswordResetRepository with default behaviors
func NewMockPasswordResetRepository() *MockPasswordResetRepository {
	return &MockPasswordResetRepository{}
}

// Create persists a reset token
func (m *MockPasswordResetRepository) Create(ctx context.Context, reset *domain.PasswordReset) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, reset)
	}
	return nil
}

// Consume atomically marks a token used
func (m *MockPasswordResetRepository) Consume(ctx context.Context, token string, now time.Time) (*domain.PasswordReset, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, token, now)
	}
	return nil, domain.ErrSecretInvalid
}

// Compile-time interface compliance verification
var _ domain.PasswordResetRepository = (*MockPasswordResetRepository)(nil)
