package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/mart-api/internal/api/middleware"
	"github.com/phrazzld/mart-api/internal/api/shared"
	"github.com/phrazzld/mart-api/internal/mocks"
	"github.com/phrazzld/mart-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	exp := time.Now().Add(time.Hour)
	validClaims := &auth.Claims{UserID: 9, ID: "jti-9", TokenType: auth.TokenTypeAccess, ExpiresAt: exp}

	tests := []struct {
		name       string
		header     string
		validate   func(ctx context.Context, token string) (*auth.Claims, error)
		revoked    []string
		revokedErr error
		wantStatus int
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			validate:   func(context.Context, string) (*auth.Claims, error) { return validClaims, nil },
			wantStatus: http.StatusOK,
		},
		{
			name:       "lowercase scheme",
			header:     "bearer good",
			validate:   func(context.Context, string) (*auth.Claims, error) { return validClaims, nil },
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired",
			header: "Bearer old",
			validate: func(context.Context, string) (*auth.Claims, error) {
				return nil, auth.ErrExpiredToken
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid",
			header: "Bearer forged",
			validate: func(context.Context, string) (*auth.Claims, error) {
				return nil, auth.ErrInvalidToken
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked",
			header:     "Bearer good",
			validate:   func(context.Context, string) (*auth.Claims, error) { return validClaims, nil },
			revoked:    []string{"jti-9"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revocation lookup failure",
			header:     "Bearer good",
			validate:   func(context.Context, string) (*auth.Claims, error) { return validClaims, nil },
			revokedErr: errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtSvc := &mocks.MockJWTService{ValidateTokenFn: tt.validate}
			if tt.validate == nil {
				jwtSvc.ValidateTokenFn = func(context.Context, string) (*auth.Claims, error) {
					t.Fatal("token must not be validated")
					return nil, nil
				}
			}
			tokens := mocks.NewMockTokenStore()
			for _, jti := range tt.revoked {
				require.NoError(t, tokens.Revoke(context.Background(), jti, exp))
			}
			if tt.revokedErr != nil {
				tokens.IsRevokedFn = func(context.Context, string) (bool, error) { return false, tt.revokedErr }
			}

			var seen shared.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = shared.IdentityFrom(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/staff", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			middleware.NewAuthMiddleware(jwtSvc, tokens).Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			switch tt.wantStatus {
			case http.StatusOK:
				assert.Equal(t, int64(9), seen.UserID)
				assert.Equal(t, "jti-9", seen.TokenID)
				assert.Equal(t, exp, seen.ExpiresAt)
			case http.StatusUnauthorized:
				var body map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "Unauthenticated.", body["error"])
				assert.Equal(t, float64(401), body["status_code"])
			}
		})
	}
}
