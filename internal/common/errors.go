package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")

	// Service-level errors.
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("forbidden")

	// Login errors.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Credential extraction errors.
	ErrNoCredential        = errors.New("no credential")
	ErrEmptyToken          = errors.New("empty token")
	ErrMalformedCredential = errors.New("malformed credential")
	ErrUnknownSubject      = errors.New("unknown subject")
)
