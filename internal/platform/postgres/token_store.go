package postgres

import (
	"context"
	"time"

	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenStore persists revoked token ids in revoked_tokens.
type TokenStore struct {
	db *gorm.DB
}

var _ store.TokenStore = (*TokenStore)(nil)

// NewTokenStore creates a TokenStore.
func NewTokenStore(db *gorm.DB) *TokenStore {
	return &TokenStore{db: db}
}

// Revoke implements store.TokenStore.
func (s *TokenStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.RevokedToken{JTI: jti, ExpiresAt: expiresAt.UTC()}).Error
	if err != nil {
		return store.NewStoreError("revoked token", "create", "insert failed", MapError(err))
	}
	return nil
}

// IsRevoked implements store.TokenStore.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&domain.RevokedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error
	if err != nil {
		return false, store.NewStoreError("revoked token", "get", "lookup failed", MapError(err))
	}
	return count > 0, nil
}

// PurgeExpired implements store.TokenStore.
func (s *TokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at <= ?", now.UTC()).
		Delete(&domain.RevokedToken{})
	if result.Error != nil {
		return 0, store.NewStoreError("revoked token", "delete", "purge failed", MapError(result.Error))
	}
	return result.RowsAffected, nil
}
