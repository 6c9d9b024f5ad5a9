package mocks

import (
	"time"

	"github.com/fasalmbt/complainto/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateFunc func(subject string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate signs a session token
func (m *MockTokenService) Generate(subject string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(subject)
	}
	return "token_for_" + subject, nil
}

// Validate verifies a session token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	now := time.Now().Unix()
	return &domain.TokenClaims{Subject: "test@example.com", IssuedAt: now, ExpiresAt: now + 1800}, nil
}

// Compile-time interface compliance verification
var _ domain.TokenService = (*MockTokenService)(nil)
