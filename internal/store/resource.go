package store

import (
	"context"

	"github.com/phrazzld/mart-api/internal/domain"
)

// Paging defaults applied by ListQuery.Normalize.
const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// ListQuery selects a page of active rows.
type ListQuery struct {
	// Search is matched case-insensitively as a substring of the
	// resource's searchable columns. Empty matches everything.
	Search string

	// Filters are exact-match column constraints, keyed by column name.
	// Columns the resource does not allow are ignored.
	Filters map[string]int64

	Page    int
	PerPage int
}

// Normalize clamps paging to sane values.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = DefaultPerPage
	}
	if q.PerPage > MaxPerPage {
		q.PerPage = MaxPerPage
	}
	return q
}

// Offset is the number of rows skipped before the current page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// Page is one slice of a listing plus the total match count.
type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

// ResourceStore is the persistence contract shared by every back-office
// resource. Reads and updates see active rows only.
type ResourceStore[T any] interface {
	// List returns the requested page of active rows ordered by id.
	List(ctx context.Context, q ListQuery) (*Page[T], error)

	// Get returns the active row with the given id.
	// Returns ErrNotFound if it does not exist or is trashed.
	Get(ctx context.Context, id int64) (*T, error)

	// Create inserts the entity and fills its id and timestamps.
	Create(ctx context.Context, entity *T) error

	// Update replaces every writable column of an active row.
	// Returns ErrNotFound if the row vanished or was trashed meanwhile.
	Update(ctx context.Context, entity *T) error

	// Delete trashes an active row (or removes it, for resources without
	// soft delete) and returns its final state.
	// Returns ErrNotFound if no active row has the id.
	Delete(ctx context.Context, id int64) (*T, error)

	// Restore returns a trashed row to the active state.
	// Returns ErrNotFound if no trashed row has the id.
	Restore(ctx context.Context, id int64) (*T, error)
}

// Per-entity repositories.
type (
	BranchStore      = ResourceStore[domain.Branch]
	CategoryStore    = ResourceStore[domain.Category]
	ProductStore     = ResourceStore[domain.Product]
	PositionStore    = ResourceStore[domain.Position]
	StaffStore       = ResourceStore[domain.Staff]
	InvoiceStore     = ResourceStore[domain.Invoice]
	InvoiceItemStore = ResourceStore[domain.InvoiceItem]
)
