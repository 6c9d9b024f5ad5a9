package domain

import "errors"

// Secret errors. Not-found, expired and already-consumed all collapse to
// ErrSecretInvalid so a caller cannot tell which condition failed.
var (
	ErrSecretInvalid  = errors.New("invalid or expired secret")
	ErrDeliveryFailed = errors.New("secret delivery failed")
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnauthorized       = errors.New("invalid authentication credentials")
	ErrForbidden          = errors.New("admin access required")
)

// Password change errors
var (
	ErrPasswordIncorrect = errors.New("current password is incorrect")
	ErrPasswordMismatch  = errors.New("new passwords don't match")
)

// Complaint errors
var (
	ErrComplaintNotFound = errors.New("complaint not found")
)
