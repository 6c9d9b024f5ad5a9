package domain

import "time"

// Complaint status values an admin can assign.
const (
	ComplaintPending    = "pending"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
	ComplaintRejected   = "rejected"
)

// User represents an account in the system
type User struct {
	ID           uint
	Email        string
	Name         string
	PasswordHash string `gorm:"column:hashed_password"`
	IsAdmin      bool
	CreatedAt    time.Time
}

// RoleName maps the admin flag to the role used for route authorization.
func (u *User) RoleName() string {
	if u.IsAdmin {
		return "admin"
	}
	return "user"
}

// PasswordReset is a single-use token authorizing one password change.
// Consumed rows are kept as an audit trail, never deleted.
type PasswordReset struct {
	ID        uint
	UserID    uint
	Token     string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// EmailOTP is a single-use numeric code tied to an email address. The
// address does not have to belong to an existing account.
type EmailOTP struct {
	ID        uint
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Complaint represents a user-submitted complaint
type Complaint struct {
	ID             uint
	Title          string
	Description    string
	Category       string
	Status         string
	ScreenshotPath string
	AdminNotes     string
	UserID         uint
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ComplaintSummary is a complaint joined with its reporter, for admin triage
type ComplaintSummary struct {
	Complaint
	UserName  string
	UserEmail string
}

// TokenClaims represents verified session token claims
type TokenClaims struct {
	Subject   string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User        *User
	AccessToken string
	TokenType   string
	ExpiresIn   int64
}
