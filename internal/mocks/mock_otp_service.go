package mocks

import (
	"context"

	"github.com/fasalmbt/complainto/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssueFunc  func(ctx context.Context, email string) (*domain.EmailOTP, error)
	VerifyFunc func(ctx context.Context, email, code string) (*domain.EmailOTP, error)
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue generates and delivers a code
func (m *MockOTPService) Issue(ctx context.Context, email string) (*domain.EmailOTP, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, email)
	}
	return &domain.EmailOTP{Email: email, Code: "123456"}, nil
}

// Verify checks and consumes a code
func (m *MockOTPService) Verify(ctx context.Context, email, code string) (*domain.EmailOTP, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, code)
	}
	return nil, domain.ErrSecretInvalid
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*MockOTPService)(nil)
