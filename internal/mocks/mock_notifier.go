package mocks

import "github.com/fasalmbt/complainto/domain"

// MockNotifier implements domain.Notifier interface for testing
type MockNotifier struct {
	SendOTPFunc           func(to, code string) error
	SendPasswordResetFunc func(to, resetLink string) error
}

// NewMockNotifier creates a new MockNotifier with default behaviors
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// SendOTP delivers an OTP code
func (m *MockNotifier) SendOTP(to, code string) error {
	if m.SendOTPFunc != nil {
		return m.SendOTPFunc(to, code)
	}
	return nil
}

// SendPasswordReset delivers a reset link
func (m *MockNotifier) SendPasswordReset(to, resetLink string) error {
	if m.SendPasswordResetFunc != nil {
		return m.SendPasswordResetFunc(to, resetLink)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.Notifier = (*MockNotifier)(nil)
