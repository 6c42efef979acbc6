package auth

import "errors"

// Authentication failures. Messages are user-facing and deliberately generic
// where they must not reveal which field was wrong.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrReservedEmail      = errors.New("this email address is reserved")
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
