// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrorValidation         = errors.New("validation error")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorPersistence        = errors.New("persistence error")

	// ErrInvalidHash marks a stored password digest that cannot be parsed.
	// Reported like a persistence failure, but kept separate so the boundary
	// can log data corruption distinctly from transient store trouble.
	ErrInvalidHash = errors.New("invalid password hash")

	// Auth errors (invalid, forged or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
