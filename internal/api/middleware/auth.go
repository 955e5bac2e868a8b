package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/mart-api/internal/api/shared"
	"github.com/phrazzld/mart-api/internal/platform/logger"
	"github.com/phrazzld/mart-api/internal/service/auth"
	"github.com/phrazzld/mart-api/internal/store"
)

// UnauthenticatedMessage is the error body of every rejected request.
const UnauthenticatedMessage = "Unauthenticated."

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	tokens     store.TokenStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, tokens store.TokenStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokens:     tokens,
	}
}

// Authenticate validates the bearer token, rejects revoked ones and adds the
// caller's identity to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthenticatedMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrWrongTokenType):
				shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, UnauthenticatedMessage, err)
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					"An unexpected error occurred", err)
			}
			return
		}

		revoked, err := m.tokens.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"An unexpected error occurred", err)
			return
		}
		if revoked {
			logger.FromContextOrDefault(r.Context()).Debug("rejected revoked token", "user_id", claims.UserID)
			shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthenticatedMessage)
			return
		}

		ctx := shared.WithIdentity(r.Context(), shared.Identity{
			UserID:    claims.UserID,
			TokenID:   claims.ID,
			ExpiresAt: claims.ExpiresAt,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", auth.ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", auth.ErrInvalidToken
	}
	return token, nil
}
