// Package common defines shared constants and sentinel errors used across
// the carteira components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal    = errors.New("internal error")
	ErrorUnavailable = errors.New("storage unavailable")

	// Validation errors (rejected before touching storage).
	ErrorValidation = errors.New("validation error")

	// Auth errors. Invalid credentials covers both unknown username and
	// wrong password so the caller cannot tell which check failed.
	ErrorInvalidCredentials = errors.New("invalid username or password")
	ErrorUnauthenticated    = errors.New("unauthenticated")

	// Token errors (bad signature, garbage, missing claims or expiry).
	ErrInvalidToken = errors.New("invalid token")
)
