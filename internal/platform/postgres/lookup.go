package postgres

import (
	"context"
	"fmt"
	"regexp"

	"github.com/phrazzld/mart-api/internal/validation"
	"gorm.io/gorm"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Lookup answers exists/unique validation rules with COUNT queries. It sees
// trashed rows too, so a soft-deleted parent still satisfies exists.
type Lookup struct {
	db *gorm.DB
}

var _ validation.Lookup = (*Lookup)(nil)

// NewLookup creates a Lookup.
func NewLookup(db *gorm.DB) *Lookup {
	return &Lookup{db: db}
}

// Exists implements validation.Lookup.
func (l *Lookup) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	if !identifierPattern.MatchString(table) || !identifierPattern.MatchString(column) {
		return false, fmt.Errorf("lookup: invalid identifier %q.%q", table, column)
	}

	query := l.db.WithContext(ctx).Table(table)
	if s, ok := value.(string); ok {
		query = query.Where("LOWER("+column+") = LOWER(?)", s)
	} else {
		query = query.Where(column+" = ?", value)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup %s.%s: %w", table, column, MapError(err))
	}
	return count > 0, nil
}
