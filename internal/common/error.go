package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration validation errors, in the order they are checked.
	ErrorMissingFields    = errors.New("missing required fields")
	ErrorInvalidEmail     = errors.New("invalid email format")
	ErrorPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrorEmailTaken       = errors.New("email already registered")

	// Login errors. Unknown email and wrong password both surface as
	// ErrorInvalidCredentials so responses carry no enumeration signal.
	ErrorMissingCredentials = errors.New("email and password are required")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Request-layer errors (missing or malformed Authorization header).
	ErrorNotAuthenticated = errors.New("no token provided")
)
