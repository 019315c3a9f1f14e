// Package common contains shared constants and sentinel errors used across
// backoffice client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrNetwork = errors.New("network error")
	ErrServer  = errors.New("server error")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionExpired     = errors.New("session expired")
	ErrNoRefreshToken     = errors.New("no refresh token")
	ErrRefreshRejected    = errors.New("refresh rejected")

	// Resource errors.
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")

	// Client-side pre-submit checks.
	ErrValidation = errors.New("validation error")
)
