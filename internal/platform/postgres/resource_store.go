package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/store"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResourceStore implements store.ResourceStore for any domain entity with
// gorm. Entities embedding domain.SoftDelete get the trashed lifecycle;
// others are deleted outright and can never be restored.
type ResourceStore[T any] struct {
	db         *gorm.DB
	entity     string
	search     []string
	filters    map[string]bool
	softDelete bool
}

// ResourceOptions describes how a resource is listed.
type ResourceOptions struct {
	// Entity names the resource in errors, e.g. "product".
	Entity string
	// Search lists the columns matched by ListQuery.Search.
	Search []string
	// Filters lists the columns ListQuery.Filters may constrain.
	Filters []string
}

// NewResourceStore creates a gorm-backed store for T.
func NewResourceStore[T any](db *gorm.DB, opts ResourceOptions) *ResourceStore[T] {
	filters := make(map[string]bool, len(opts.Filters))
	for _, f := range opts.Filters {
		filters[f] = true
	}
	return &ResourceStore[T]{
		db:         db,
		entity:     opts.Entity,
		search:     opts.Search,
		filters:    filters,
		softDelete: domain.IsSoftDeletable[T](),
	}
}

// List implements store.ResourceStore.
func (s *ResourceStore[T]) List(ctx context.Context, q store.ListQuery) (*store.Page[T], error) {
	q = q.Normalize()
	query := s.db.WithContext(ctx).Model(new(T))

	if term := strings.TrimSpace(q.Search); term != "" && len(s.search) > 0 {
		pattern := "%" + escapeLike(term) + "%"
		conds := make([]string, len(s.search))
		args := make([]any, len(s.search))
		for i, col := range s.search {
			conds[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		query = query.Where("("+strings.Join(conds, " OR ")+")", args...)
	}

	for col, value := range q.Filters {
		if s.filters[col] {
			query = query.Where(clause.Eq{Column: clause.Column{Name: col}, Value: value})
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, s.wrap("list", "count failed", err)
	}

	items := make([]T, 0, q.PerPage)
	if err := query.Order("id ASC").Offset(q.Offset()).Limit(q.PerPage).Find(&items).Error; err != nil {
		return nil, s.wrap("list", "query failed", err)
	}

	return &store.Page[T]{Items: items, Total: total, Page: q.Page, PerPage: q.PerPage}, nil
}

// Get implements store.ResourceStore.
func (s *ResourceStore[T]) Get(ctx context.Context, id int64) (*T, error) {
	entity := new(T)
	if err := s.db.WithContext(ctx).First(entity, id).Error; err != nil {
		return nil, s.wrap("get", "lookup failed", err)
	}
	return entity, nil
}

// Create implements store.ResourceStore.
func (s *ResourceStore[T]) Create(ctx context.Context, entity *T) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return s.wrap("create", "insert failed", err)
	}
	return nil
}

// Update implements store.ResourceStore. Every column except the key,
// created_at and deleted_at is written, including zero values.
func (s *ResourceStore[T]) Update(ctx context.Context, entity *T) error {
	omit := []string{"id", "created_at"}
	if s.softDelete {
		omit = append(omit, "deleted_at")
	}

	result := s.db.WithContext(ctx).Model(entity).Select("*").Omit(omit...).Updates(entity)
	if result.Error != nil {
		return s.wrap("update", "update failed", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.wrap("update", "no active row", store.ErrNotFound)
	}
	return nil
}

// Delete implements store.ResourceStore.
func (s *ResourceStore[T]) Delete(ctx context.Context, id int64) (*T, error) {
	entity := new(T)
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(entity, id).Error; err != nil {
			return err
		}
		result := tx.Delete(entity)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return store.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return nil, s.wrap("delete", "delete failed", err)
	}

	if sd, ok := any(entity).(domain.SoftDeletable); ok && !sd.Trashed() {
		sd.Trash(time.Now().UTC())
	}
	return entity, nil
}

// Restore implements store.ResourceStore.
func (s *ResourceStore[T]) Restore(ctx context.Context, id int64) (*T, error) {
	if !s.softDelete {
		return nil, s.wrap("restore", "resource is never trashed", store.ErrNotFound)
	}

	entity := new(T)
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *gorm.DB) error {
		err := tx.Unscoped().
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("deleted_at IS NOT NULL").
			First(entity, id).Error
		if err != nil {
			return err
		}
		return tx.Unscoped().Model(entity).Update("deleted_at", nil).Error
	})
	if err != nil {
		return nil, s.wrap("restore", "restore failed", err)
	}

	if sd, ok := any(entity).(domain.SoftDeletable); ok {
		sd.Untrash()
	}
	return entity, nil
}

func (s *ResourceStore[T]) wrap(op, msg string, err error) error {
	return store.NewStoreError(s.entity, op, msg, MapError(err))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
