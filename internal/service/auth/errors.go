package auth

import "errors"

// Token and credential errors. Callers match them with errors.Is.
var (
	ErrInvalidToken     = errors.New("invalid authentication token")
	ErrExpiredToken     = errors.New("authentication token has expired")
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")
	ErrMissingToken     = errors.New("authentication token is missing")

	// ErrWrongTokenType means the "type" claim is not an access token.
	ErrWrongTokenType = errors.New("wrong authentication token type")

	ErrPasswordMismatch = errors.New("password does not match")
)
