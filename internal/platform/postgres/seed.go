package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/mart-api/internal/domain"
	"gorm.io/gorm"
)

// DefaultBranch is the demo branch inserted by Seed.
var DefaultBranch = domain.Branch{
	Name:          "FakeMart",
	Location:      "PhnomPenh",
	ContactNumber: "099 77 49 67",
}

// Seed inserts the demo branch unless a branch with that name already
// exists. It reports whether a row was inserted.
func Seed(ctx context.Context, db *gorm.DB) (bool, error) {
	var existing domain.Branch
	err := db.WithContext(ctx).Unscoped().Where("name = ?", DefaultBranch.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("seed branch: %w", MapError(err))
	}

	branch := DefaultBranch
	if err := db.WithContext(ctx).Create(&branch).Error; err != nil {
		return false, fmt.Errorf("seed branch: %w", MapError(err))
	}
	return true, nil
}
