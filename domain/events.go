package domain

import (
	"context"
	"time"
)

// AuditEventType defines the type of audit event
type AuditEventType string

const (
	// Account lifecycle events
	UserRegistrationEvent AuditEventType = "USER_REGISTERED"
	UserLoginEvent        AuditEventType = "USER_LOGIN"
	UserLoginFailureEvent AuditEventType = "USER_LOGIN_FAILED"
	AccountDeletionEvent  AuditEventType = "ACCOUNT_DELETED"
	PasswordChangeEvent   AuditEventType = "PASSWORD_CHANGED"

	// One-time secret events
	OTPIssuedEvent      AuditEventType = "OTP_ISSUED"
	OTPVerifiedEvent    AuditEventType = "OTP_VERIFIED"
	OTPFailureEvent     AuditEventType = "OTP_VERIFICATION_FAILED"
	ResetRequestedEvent AuditEventType = "PASSWORD_RESET_REQUESTED"
	ResetCompletedEvent AuditEventType = "PASSWORD_RESET_COMPLETED"
	ResetFailureEvent   AuditEventType = "PASSWORD_RESET_FAILED"

	// Complaint events
	ComplaintCreatedEvent AuditEventType = "COMPLAINT_CREATED"
	ComplaintTriagedEvent AuditEventType = "COMPLAINT_TRIAGED"
)

// AuditEvent represents a business event that occurred in the system
type AuditEvent struct {
	EventType AuditEventType         `json:"event_type"`
	UserID    uint                   `json:"user_id,omitempty"`
	Email     string                 `json:"email,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	ErrorMsg  string                 `json:"error_msg,omitempty"`
	Success   bool                   `json:"success"`
}

// AuditLogger records business events for later review
type AuditLogger interface {
	LogEvent(ctx context.Context, event *AuditEvent) error
}

// NewAuditEvent creates a new audit event with common fields populated
func NewAuditEvent(eventType AuditEventType, userID uint) *AuditEvent {
	return &AuditEvent{
		EventType: eventType,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Metadata:  make(map[string]interface{}),
		Success:   true,
	}
}

// WithError sets error information on the audit event
func (e *AuditEvent) WithError(err error) *AuditEvent {
	e.Success = false
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

// WithEmail sets the email field
func (e *AuditEvent) WithEmail(email string) *AuditEvent {
	e.Email = email
	return e
}

// WithMetadata adds metadata to the event
func (e *AuditEvent) WithMetadata(key string, value interface{}) *AuditEvent {
	e.Metadata[key] = value
	return e
}
