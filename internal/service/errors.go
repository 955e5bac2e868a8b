package service

import "errors"

// Sentinel errors returned by the account flows. The API layer maps them to
// HTTP status codes with errors.Is.
var (
	// ErrInvalidCredentials indicates an unknown email or a wrong password at login.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCurrentPasswordMismatch indicates the current password given for a
	// password change is wrong.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrCurrentPasswordMismatch = errors.New("current password does not match")
)
