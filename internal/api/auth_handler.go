package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/mart-api/internal/api/shared"
	"github.com/phrazzld/mart-api/internal/service"
	"github.com/phrazzld/mart-api/internal/store"
	"github.com/phrazzld/mart-api/internal/validation"
	"github.com/spf13/cast"
)

var (
	registerRules = validation.Rules{
		{Field: "name", Tags: "filled,string,between=2 100"},
		{Field: "email", Tags: "filled,string,email,max=100,unique=users.email"},
		{Field: "password", Tags: "filled,string,confirmed,min=6"},
		{Field: "staff_id", Tags: "filled,integer"},
	}

	loginRules = validation.Rules{
		{Field: "email", Tags: "filled,string,email"},
		{Field: "password", Tags: "filled,string"},
	}

	changePasswordRules = validation.Rules{
		{Field: "current_password", Tags: "filled,string"},
		{Field: "new_password", Tags: "filled,string,confirmed,min=6"},
	}
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	accounts  service.AccountService
	validator *validation.Validator
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts service.AccountService, v *validation.Validator) *AuthHandler {
	return &AuthHandler{accounts: accounts, validator: v}
}

// Register handles the /auth/register endpoint.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeAndValidate(w, r, h.validator, registerRules)
	if !ok {
		return
	}

	user, err := h.accounts.Register(r.Context(), service.Registration{
		Name:     cast.ToString(input["name"]),
		Email:    cast.ToString(input["email"]),
		Password: cast.ToString(input["password"]),
		StaffID:  cast.ToInt64(input["staff_id"]),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			// lost a race with the unique rule
			shared.RespondWithValidationErrors(w, r, map[string]string{
				"email": GetSafeErrorMessage(err, "User"),
			})
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, RegisterResponse{
		Status:     shared.StatusSuccess,
		Message:    "User successfully registered",
		User:       user,
		StatusCode: http.StatusCreated,
	})
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	input, ok := decodeAndValidate(w, r, h.validator, loginRules)
	if !ok {
		return
	}

	session, err := h.accounts.Login(r.Context(), cast.ToString(input["email"]), cast.ToString(input["password"]))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, msgUnauthorized, err,
				shared.WithElevatedLogLevel())
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Status:      shared.StatusSuccess,
		AccessToken: session.AccessToken,
		TokenType:   "bearer",
		ExpiresIn:   int64(session.ExpiresIn.Seconds()),
		User:        session.User,
		StatusCode:  http.StatusOK,
	})
}

// Logout handles the /auth/logout endpoint. The presented token stays
// revoked until it would have expired.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IdentityFrom(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	if err := h.accounts.Logout(r.Context(), id.TokenID, id.ExpiresAt); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err, "Token"), err)
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Successfully logged out", nil)
}

// ChangePassword handles the /auth/change-password endpoint.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IdentityFrom(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Unauthenticated.")
		return
	}

	input, ok := decodeAndValidate(w, r, h.validator, changePasswordRules)
	if !ok {
		return
	}

	err := h.accounts.ChangePassword(r.Context(), id.UserID,
		cast.ToString(input["current_password"]), cast.ToString(input["new_password"]))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCurrentPasswordMismatch), errors.Is(err, store.ErrUserNotFound):
			shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, msgPasswordWrong, err)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		}
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Password changed successfully", nil)
}
