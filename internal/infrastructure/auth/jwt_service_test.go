package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fasalmbt/complainto/domain"
)

const testSecret = "test-secret-key"

func createJWTServiceForTest(t *testing.T, ttl time.Duration) domain.TokenService {
	t.Helper()
	return NewJWTService(testSecret, "complainto", ttl)
}

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := createJWTServiceForTest(t, 30*time.Minute)

	token, err := svc.Generate("user@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("Generate returned empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.Subject != "user@example.com" {
		t.Errorf("expected subject user@example.com, got %s", claims.Subject)
	}
	if time.Unix(claims.ExpiresAt, 0).Before(time.Now()) {
		t.Error("freshly issued token should not be expired")
	}
}

func TestJWTServiceTokenUniqueness(t *testing.T) {
	svc := createJWTServiceForTest(t, 30*time.Minute)

	first, err := svc.Generate("user@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := svc.Generate("user@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if first == second {
		t.Error("two tokens for the same subject should differ (jti claim)")
	}
}

func TestJWTServiceValidateFailures(t *testing.T) {
	svc := createJWTServiceForTest(t, 30*time.Minute)

	validToken, err := svc.Generate("user@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	tamperedPayload := func() string {
		parts := strings.Split(validToken, ".")
		// Re-sign-free payload swap: claims change, signature does not.
		forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "other@example.com",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		forgedString, signErr := forged.SignedString([]byte("attacker-key"))
		if signErr != nil {
			t.Fatalf("failed to build forged token: %v", signErr)
		}
		forgedParts := strings.Split(forgedString, ".")
		return forgedParts[0] + "." + forgedParts[1] + "." + parts[2]
	}()

	missingSubject := func() string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
			"iat": time.Now().Unix(),
		})
		s, signErr := tok.SignedString([]byte(testSecret))
		if signErr != nil {
			t.Fatalf("failed to build token: %v", signErr)
		}
		return s
	}()

	wrongKey := func() string {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "user@example.com",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		s, signErr := tok.SignedString([]byte("some-other-secret"))
		if signErr != nil {
			t.Fatalf("failed to build token: %v", signErr)
		}
		return s
	}()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage token", token: "not.a.token"},
		{name: "empty token", token: ""},
		{name: "tampered payload keeps old signature", token: tamperedPayload},
		{name: "signed with wrong key", token: wrongKey},
		{name: "missing subject claim", token: missingSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Validate(tt.token)
			if claims != nil {
				t.Error("expected nil claims")
			}
			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestJWTServiceExpiredToken(t *testing.T) {
	svc := createJWTServiceForTest(t, -1*time.Minute)

	token, err := svc.Generate("user@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	longLived := createJWTServiceForTest(t, 30*time.Minute)
	if _, err := longLived.Validate(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for expired token, got %v", err)
	}
}
