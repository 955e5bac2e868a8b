package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/mart-api/internal/service"
	"github.com/phrazzld/mart-api/internal/service/auth"
	"github.com/phrazzld/mart-api/internal/store"
)

// Client-facing messages that do not depend on the resource.
const (
	msgInvalidRequest = "Invalid request format"
	msgUnexpected     = "An unexpected error occurred"
	msgUnauthorized   = "Unauthorized"
	msgPasswordWrong  = "Current password does not match!"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrCurrentPasswordMismatch):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. resource names the entity in not-found and
// conflict messages, e.g. "Product".
func GetSafeErrorMessage(err error, resource string) string {
	if err == nil {
		return msgUnexpected
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return msgUnauthorized
	case errors.Is(err, service.ErrCurrentPasswordMismatch):
		return msgPasswordWrong
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return "Unauthenticated."

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return resource + " not found"

	case errors.Is(err, store.ErrEmailExists):
		return "The email has already been taken."
	case errors.Is(err, store.ErrDuplicate):
		return resource + " already exists"
	case errors.Is(err, store.ErrInvalidEntity):
		return resource + " conflicts with related records"

	default:
		return msgUnexpected
	}
}
