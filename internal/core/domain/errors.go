package domain

import "errors"

// Sentinel errors shared across services and mapped to HTTP statuses by the
// API error handler.
var (
	// ErrValidation wraps client-fixable input problems (empty required
	// fields, invalid date ranges, malformed dates).
	ErrValidation = errors.New("validation failed")

	// ErrMissingAuth means the Authorization header was absent or not of the
	// form "Bearer <token>".
	ErrMissingAuth = errors.New("missing bearer authorization")

	// ErrTokenExpired and ErrTokenInvalid are deliberately distinct: an
	// expired token should prompt a re-login, a tampered one is rejected
	// outright.
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrRateLimited        = errors.New("too many login attempts")

	// ErrNotFound covers any owned resource that is absent OR belongs to
	// another user. The two cases are intentionally indistinguishable so the
	// API never leaks the existence of other users' data.
	ErrNotFound = errors.New("resource not found")
)
