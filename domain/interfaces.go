package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID uint, passwordHash string) error
	Delete(ctx context.Context, userID uint) error
}

// PasswordResetRepository persists single-use reset tokens. Consume must
// flip the used flag with a conditional update so that at most one caller
// ever receives the row, even under concurrent verification.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *PasswordReset) error
	Consume(ctx context.Context, token string, now time.Time) (*PasswordReset, error)
}

// EmailOTPRepository persists one-time codes. DeleteUnused removes every
// outstanding unconsumed code for an email so at most one is live at a
// time. Consume has the same at-most-once contract as reset tokens.
type EmailOTPRepository interface {
	Create(ctx context.Context, otp *EmailOTP) error
	DeleteUnused(ctx context.Context, email string) error
	Consume(ctx context.Context, email, code string, now time.Time) (*EmailOTP, error)
}

// ComplaintRepository defines complaint data access operations
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *Complaint) error
	FindByID(ctx context.Context, id uint) (*Complaint, error)
	FindByUser(ctx context.Context, userID uint) ([]Complaint, error)
	FindAllWithUsers(ctx context.Context) ([]ComplaintSummary, error)
	Update(ctx context.Context, complaint *Complaint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService signs and verifies stateless session tokens. Keeping this
// as a capability interface lets an implementation swap to a server-side
// session table without changing callers.
type TokenService interface {
	Generate(subject string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// Notifier delivers a secret to a recipient over an external channel.
// The core only depends on the error signal; transport details are
// invisible to it.
type Notifier interface {
	SendOTP(to, code string) error
	SendPasswordReset(to, resetLink string) error
}

// AuthService defines authentication and account business logic
type AuthService interface {
	Register(ctx context.Context, email, name, password string, isAdmin bool) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Authenticate(ctx context.Context, token string) (*User, error)
	ChangePassword(ctx context.Context, userID uint, current, newPassword, confirm string) error
	GetProfile(ctx context.Context, userID uint) (*User, error)
	UpdateProfile(ctx context.Context, userID uint, name, email string) error
	DeleteAccount(ctx context.Context, userID uint, password, otp string) error
}

// OTPService issues and verifies one-time email codes
type OTPService interface {
	Issue(ctx context.Context, email string) (*EmailOTP, error)
	Verify(ctx context.Context, email, code string) (*EmailOTP, error)
}

// PasswordResetService issues reset tokens and applies password resets
type PasswordResetService interface {
	RequestReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ComplaintService defines complaint business logic
type ComplaintService interface {
	Create(ctx context.Context, userID uint, title, description, category, screenshotPath string) (*Complaint, error)
	ListForUser(ctx context.Context, userID uint) ([]Complaint, error)
	ListAll(ctx context.Context) ([]ComplaintSummary, error)
	UpdateStatus(ctx context.Context, complaintID uint, status, adminNotes string) error
}

// PolicyService defines authorization policy operations
type PolicyService interface {
	AddPolicy(role, resource, action string) error
	RemovePolicy(role, resource, action string) error
	CheckPermission(role, resource, action string) (bool, error)
	GetPolicies() [][]string
}

// CasbinEnforcer interface defines the methods we need from Casbin enforcer
type CasbinEnforcer interface {
	AddPolicy(params ...interface{}) (bool, error)
	RemovePolicy(params ...interface{}) (bool, error)
	Enforce(rvals ...interface{}) (bool, error)
	GetPolicy() ([][]string, error)
	SavePolicy() error
}
