package auth

import (
	"context"
	"time"
)

// TokenTypeAccess is the only token type issued by this service.
const TokenTypeAccess = "access"

// Claims is the authenticated view of a validated token.
type Claims struct {
	UserID    int64
	TokenType string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	// ID is the unique token identifier (jti) used for revocation on logout.
	ID string
}

// JWTService issues and validates bearer tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the given user.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken verifies signature, expiry and token type and returns the claims.
	// Errors are ErrInvalidToken, ErrExpiredToken, ErrTokenNotYetValid or ErrWrongTokenType.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// TokenLifetime reports how long issued tokens remain valid.
	TokenLifetime() time.Duration
}
