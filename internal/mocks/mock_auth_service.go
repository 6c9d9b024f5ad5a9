package mocks

import (
	"context"

	"github.com/fasalmbt/complainto/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, email, name, password string, isAdmin bool) (*domain.AuthResult, error)
	LoginFunc          func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	AuthenticateFunc   func(ctx context.Context, token string) (*domain.User, error)
	ChangePasswordFunc func(ctx context.Context, userID uint, current, newPassword, confirm string) error
	GetProfileFunc     func(ctx context.Context, userID uint) (*domain.User, error)
	UpdateProfileFunc  func(ctx context.Context, userID uint, name, email string) error
	DeleteAccountFunc  func(ctx context.Context, userID uint, password, otp string) error
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a user
func (m *MockAuthService) Register(ctx context.Context, email, name, password string, isAdmin bool) (*domain.AuthResult, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, name, password, isAdmin)
	}
	return nil, domain.ErrEmailTaken
}

// Login authenticates credentials
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// Authenticate resolves a bearer token to a user
func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return nil, domain.ErrUnauthorized
}

// ChangePassword changes a password
func (m *MockAuthService) ChangePassword(ctx context.Context, userID uint, current, newPassword, confirm string) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, current, newPassword, confirm)
	}
	return nil
}

// GetProfile returns a user's profile
func (m *MockAuthService) GetProfile(ctx context.Context, userID uint) (*domain.User, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}

// UpdateProfile updates a user's profile
func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uint, name, email string) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, name, email)
	}
	return nil
}

// DeleteAccount deletes a user's account
func (m *MockAuthService) DeleteAccount(ctx context.Context, userID uint, password, otp string) error {
	if m.DeleteAccountFunc != nil {
		return m.DeleteAccountFunc(ctx, userID, password, otp)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
