package domain

import "testing"

func TestUserRoleName(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{
			name:     "admin user",
			user:     User{Email: "admin@example.com", IsAdmin: true},
			expected: "admin",
		},
		{
			name:     "regular user",
			user:     User{Email: "user@example.com"},
			expected: "user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.RoleName(); got != tt.expected {
				t.Errorf("expected role %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNewAuditEvent(t *testing.T) {
	event := NewAuditEvent(OTPIssuedEvent, 42).
		WithEmail("a@x.com").
		WithMetadata("key", "value")

	if event.EventType != OTPIssuedEvent {
		t.Errorf("expected event type %s, got %s", OTPIssuedEvent, event.EventType)
	}
	if event.UserID != 42 {
		t.Errorf("expected user ID 42, got %d", event.UserID)
	}
	if event.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", event.Email)
	}
	if !event.Success {
		t.Error("new event should default to success")
	}
	if event.Metadata["key"] != "value" {
		t.Error("metadata not recorded")
	}
	if event.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestAuditEventWithError(t *testing.T) {
	event := NewAuditEvent(OTPFailureEvent, 0).WithError(ErrSecretInvalid)

	if event.Success {
		t.Error("event with error should not be marked success")
	}
	if event.ErrorMsg != ErrSecretInvalid.Error() {
		t.Errorf("expected error message %q, got %q", ErrSecretInvalid.Error(), event.ErrorMsg)
	}
}
