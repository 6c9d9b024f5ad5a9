package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorTaxonomyDistinct(t *testing.T) {
	// Each class is a distinct sentinel; handlers rely on errors.Is to
	// pick status codes.
	sentinels := []error{
		ErrSecretInvalid,
		ErrDeliveryFailed,
		ErrUserNotFound,
		ErrInvalidCredentials,
		ErrEmailTaken,
		ErrUnauthorized,
		ErrForbidden,
		ErrPasswordIncorrect,
		ErrPasswordMismatch,
		ErrComplaintNotFound,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v unexpectedly matches %v", a, b)
			}
		}
	}
}

func TestErrorWrappingPreservesSentinel(t *testing.T) {
	wrapped := fmt.Errorf("failed to verify: %w", ErrSecretInvalid)

	if !errors.Is(wrapped, ErrSecretInvalid) {
		t.Error("wrapped error should still match ErrSecretInvalid")
	}
	if errors.Is(wrapped, ErrUnauthorized) {
		t.Error("wrapped error should not match an unrelated sentinel")
	}
}
