package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fasalmbt/complainto/domain"
	"github.com/fasalmbt/complainto/internal/mocks"
)

type authServiceMocks struct {
	userRepo      *mocks.MockUserRepository
	complaintRepo *mocks.MockComplaintRepository
	passwordSvc   *mocks.MockPasswordService
	tokenSvc      *mocks.MockTokenService
	otpSvc        *mocks.MockOTPService
	audit         *mocks.MockAuditLogger
}

func createAuthServiceForTest(t *testing.T) (domain.AuthService, *authServiceMocks) {
	t.Helper()
	m := &authServiceMocks{
		userRepo:      mocks.NewMockUserRepository(),
		complaintRepo: mocks.NewMockComplaintRepository(),
		passwordSvc:   mocks.NewMockPasswordService(),
		tokenSvc:      mocks.NewMockTokenService(),
		otpSvc:        mocks.NewMockOTPService(),
		audit:         mocks.NewMockAuditLogger(),
	}
	svc := NewAuthService(
		m.userRepo, m.complaintRepo, m.passwordSvc, m.tokenSvc, m.otpSvc, m.audit,
		30*time.Minute,
	)
	return svc, m
}

func TestRegisterSuccess(t *testing.T) {
	svc, m := createAuthServiceForTest(t)

	var created *domain.User
	m.userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
		user.ID = 1
		created = user
		return nil
	}

	result, err := svc.Register(context.Background(), "new@example.com", "New User", "password123", false)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if created == nil {
		t.Fatal("expected user to be persisted")
	}
	if created.PasswordHash != "hashed_password123" {
		t.Errorf("expected the stored hash, got %q", created.PasswordHash)
	}
	if created.PasswordHash == "password123" {
		t.Error("plaintext password must never be stored")
	}

	if result.AccessToken != "token_for_new@example.com" {
		t.Errorf("unexpected access token %q", result.AccessToken)
	}
	if result.TokenType != "bearer" {
		t.Errorf("expected token type bearer, got %q", result.TokenType)
	}
	if result.ExpiresIn != 1800 {
		t.Errorf("expected 1800s expiry, got %d", result.ExpiresIn)
	}
}

func TestRegisterEmailTaken(t *testing.T) {
	t.Run("existing account found up front", func(t *testing.T) {
		svc, m := createAuthServiceForTest(t)

		m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		}

		if _, err := svc.Register(context.Background(), "taken@example.com", "X", "pw", false); !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("unique constraint wins a race", func(t *testing.T) {
		svc, m := createAuthServiceForTest(t)

		m.userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
			return domain.ErrEmailTaken
		}

		if _, err := svc.Register(context.Background(), "taken@example.com", "X", "pw", false); !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})
}

func TestLogin(t *testing.T) {
	knownUser := &domain.User{ID: 1, Email: "user@example.com", PasswordHash: "hashed_password123"}

	tests := []struct {
		name        string
		findByEmail func(ctx context.Context, email string) (*domain.User, error)
		password    string
		expectedErr error
	}{
		{
			name: "success",
			findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
				return knownUser, nil
			},
			password: "password123",
		},
		{
			name:        "unknown email",
			password:    "password123",
			expectedErr: domain.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			findByEmail: func(ctx context.Context, email string) (*domain.User, error) {
				return knownUser, nil
			},
			password:    "wrongpass",
			expectedErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createAuthServiceForTest(t)
			m.userRepo.FindByEmailFunc = tt.findByEmail

			result, err := svc.Login(context.Background(), "user@example.com", tt.password)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login failed: %v", err)
			}
			if result.AccessToken == "" {
				t.Error("expected an access token")
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid token resolves user", func(t *testing.T) {
		svc, m := createAuthServiceForTest(t)

		m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 1, Email: email}, nil
		}

		user, err := svc.Authenticate(context.Background(), "some-token")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Email != "test@example.com" {
			t.Errorf("expected subject's account, got %q", user.Email)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, m := createAuthServiceForTest(t)

		m.tokenSvc.ValidateFunc = func(token string) (*domain.TokenClaims, error) {
			return nil, domain.ErrUnauthorized
		}

		if _, err := svc.Authenticate(context.Background(), "bad"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("subject account deleted", func(t *testing.T) {
		svc, _ := createAuthServiceForTest(t)

		// Token validates but the default user repo knows nobody.
		if _, err := svc.Authenticate(context.Background(), "orphan"); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		current     string
		newPassword string
		confirm     string
		expectedErr error
	}{
		{
			name:        "success",
			current:     "oldpass",
			newPassword: "newpass",
			confirm:     "newpass",
		},
		{
			name:        "wrong current password",
			current:     "nope",
			newPassword: "newpass",
			confirm:     "newpass",
			expectedErr: domain.ErrPasswordIncorrect,
		},
		{
			name:        "confirmation mismatch",
			current:     "oldpass",
			newPassword: "newpass",
			confirm:     "different",
			expectedErr: domain.ErrPasswordMismatch,
		},
		{
			// The current password is checked first.
			name:        "wrong current and mismatched confirmation",
			current:     "nope",
			newPassword: "newpass",
			confirm:     "different",
			expectedErr: domain.ErrPasswordIncorrect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := createAuthServiceForTest(t)

			m.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
				return &domain.User{ID: id, Email: "user@example.com", PasswordHash: "hashed_oldpass"}, nil
			}
			var newHash string
			m.userRepo.UpdatePasswordFunc = func(ctx context.Context, userID uint, passwordHash string) error {
				newHash = passwordHash
				return nil
			}

			err := svc.ChangePassword(context.Background(), 1, tt.current, tt.newPassword, tt.confirm)
			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				if newHash != "" {
					t.Error("password must not change on a failed request")
				}
				return
			}
			if err != nil {
				t.Fatalf("ChangePassword failed: %v", err)
			}
			if newHash != "hashed_newpass" {
				t.Errorf("expected the new hash to be written, got %q", newHash)
			}
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	self := &domain.User{ID: 1, Email: "me@example.com", Name: "Me"}

	t.Run("rename keeps email", func(t *testing.T) {
		svc, m := createAuthServiceForTest(t)

		m.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			cp := *self
			return &cp, nil
		}
		var updated *domain.User
		m.userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			updated = user
			return nil
		}

		if err := svc.UpdateProfile(context.Background(), 1, "New Name", "me@example.com"); err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if updated.Name != "New Name" || updated.Email != "me@example.com" {
			t.Errorf("unexpected update: %+v", updated)
		}
	})

	t.Run("new email taken by another account", func(t *testing.T) {
		svc, m := createAuthServiceForTest(t)

		m.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			cp := *self
			return &cp, nil
		}
		m.userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: 2, Email: email}, nil
		}

		if err := svc.UpdateProfile(context.Background(), 1, "Me", "other@example.com"); !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("new email free", func(t *testing.T) {
		svc, m := createAuthServiceForTest(t)

		m.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			cp := *self
			return &cp, nil
		}
		var updated *domain.User
		m.userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
			updated = user
			return nil
		}

		if err := svc.UpdateProfile(context.Background(), 1, "Me", "fresh@example.com"); err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if updated.Email != "fresh@example.com" {
			t.Errorf("expected email change, got %q", updated.Email)
		}
	})
}

func TestDeleteAccount(t *testing.T) {
	setup := func(t *testing.T) (domain.AuthService, *authServiceMocks, *[]string) {
		t.Helper()
		svc, m := createAuthServiceForTest(t)

		m.userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
			return &domain.User{ID: id, Email: "user@example.com", PasswordHash: "hashed_password123"}, nil
		}

		var calls []string
		m.complaintRepo.DeleteByUserFunc = func(ctx context.Context, userID uint) error {
			calls = append(calls, "complaints")
			return nil
		}
		m.userRepo.DeleteFunc = func(ctx context.Context, userID uint) error {
			calls = append(calls, "user")
			return nil
		}
		return svc, m, &calls
	}

	t.Run("success cascades to complaints", func(t *testing.T) {
		svc, m, calls := setup(t)

		m.otpSvc.VerifyFunc = func(ctx context.Context, email, code string) (*domain.EmailOTP, error) {
			if email != "user@example.com" || code != "654321" {
				return nil, domain.ErrSecretInvalid
			}
			return &domain.EmailOTP{Email: email, Code: code, Used: true}, nil
		}

		if err := svc.DeleteAccount(context.Background(), 1, "password123", "654321"); err != nil {
			t.Fatalf("DeleteAccount failed: %v", err)
		}
		if len(*calls) != 2 || (*calls)[0] != "complaints" || (*calls)[1] != "user" {
			t.Errorf("expected complaints deleted before the user, got %v", *calls)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, _, calls := setup(t)

		if err := svc.DeleteAccount(context.Background(), 1, "wrong", "654321"); !errors.Is(err, domain.ErrPasswordIncorrect) {
			t.Errorf("expected ErrPasswordIncorrect, got %v", err)
		}
		if len(*calls) != 0 {
			t.Error("nothing should be deleted on a failed password check")
		}
	})

	t.Run("bad OTP", func(t *testing.T) {
		svc, _, calls := setup(t)

		// Default OTP service behavior rejects every code.
		if err := svc.DeleteAccount(context.Background(), 1, "password123", "000000"); !errors.Is(err, domain.ErrSecretInvalid) {
			t.Errorf("expected ErrSecretInvalid, got %v", err)
		}
		if len(*calls) != 0 {
			t.Error("nothing should be deleted on a failed OTP check")
		}
	})
}
