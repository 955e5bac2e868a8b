package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/store"
	"gorm.io/gorm"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db *gorm.DB
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
func NewPostgresUserStore(db *gorm.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if IsUniqueViolation(err) {
			return store.ErrEmailExists
		}
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, s.mapLookupError(err)
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, s.mapLookupError(err)
	}
	return &user, nil
}

// UpdatePassword implements store.UserStore.UpdatePassword
func (s *PostgresUserStore) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	result := s.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("password", hashedPassword)
	if result.Error != nil {
		return store.NewStoreError("user", "update", "password update failed", MapError(result.Error))
	}
	if result.RowsAffected == 0 {
		return store.ErrUserNotFound
	}
	return nil
}

func (s *PostgresUserStore) mapLookupError(err error) error {
	mapped := MapError(err)
	if store.IsNotFoundError(mapped) {
		return store.ErrUserNotFound
	}
	return store.NewStoreError("user", "get", "lookup failed", mapped)
}
