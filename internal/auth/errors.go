package auth

import "errors"

var (
	// ErrValidationFailed covers malformed credentials (bad email, short password).
	ErrValidationFailed   = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotConfirmed       = errors.New("email not confirmed")
	ErrInvalidToken       = errors.New("confirmation token is invalid or expired")
	ErrNoSession          = errors.New("no active session")
)
