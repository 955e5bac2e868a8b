package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/store"
)

// MockResourceStore implements store.ResourceStore in memory. T must embed
// domain.Model; entities embedding domain.SoftDelete are trashed on delete,
// others are removed.
type MockResourceStore[T any] struct {
	ListFn    func(ctx context.Context, q store.ListQuery) (*store.Page[T], error)
	GetFn     func(ctx context.Context, id int64) (*T, error)
	CreateFn  func(ctx context.Context, entity *T) error
	UpdateFn  func(ctx context.Context, entity *T) error
	DeleteFn  func(ctx context.Context, id int64) (*T, error)
	RestoreFn func(ctx context.Context, id int64) (*T, error)

	// LastQuery records the most recent List argument after normalization.
	LastQuery store.ListQuery

	mu     sync.Mutex
	rows   map[int64]*T
	nextID int64
}

var _ store.ResourceStore[domain.Product] = (*MockResourceStore[domain.Product])(nil)

// NewMockResourceStore creates an empty store.
func NewMockResourceStore[T any]() *MockResourceStore[T] {
	return &MockResourceStore[T]{rows: make(map[int64]*T)}
}

// Seed inserts copies of the given entities as active rows and returns the
// assigned ids.
func (m *MockResourceStore[T]) Seed(entities ...T) []int64 {
	ids := make([]int64, 0, len(entities))
	for i := range entities {
		e := entities[i]
		_ = m.create(&e)
		ids = append(ids, identity(&e))
	}
	return ids
}

// Len reports the number of stored rows, trashed ones included.
func (m *MockResourceStore[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// Raw returns a copy of the stored row regardless of its state.
func (m *MockResourceStore[T]) Raw(id int64) (*T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[id]
	if !ok {
		return nil, false
	}
	c := *row
	return &c, true
}

// List implements store.ResourceStore. Search is ignored; filters are not
// applied either, since the mock has no column metadata.
func (m *MockResourceStore[T]) List(ctx context.Context, q store.ListQuery) (*store.Page[T], error) {
	q = q.Normalize()
	m.mu.Lock()
	m.LastQuery = q
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, q)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.rows))
	for id, row := range m.rows {
		if !trashed(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	items := make([]T, 0, q.PerPage)
	for i := q.Offset(); i < len(ids) && len(items) < q.PerPage; i++ {
		items = append(items, *m.rows[ids[i]])
	}

	return &store.Page[T]{Items: items, Total: int64(len(ids)), Page: q.Page, PerPage: q.PerPage}, nil
}

// Get implements store.ResourceStore.
func (m *MockResourceStore[T]) Get(ctx context.Context, id int64) (*T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok || trashed(row) {
		return nil, store.ErrNotFound
	}
	c := *row
	return &c, nil
}

// Create implements store.ResourceStore.
func (m *MockResourceStore[T]) Create(ctx context.Context, entity *T) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entity)
	}
	return m.create(entity)
}

func (m *MockResourceStore[T]) create(entity *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	setIdentity(entity, m.nextID)
	c := *entity
	m.rows[m.nextID] = &c
	return nil
}

// Update implements store.ResourceStore.
func (m *MockResourceStore[T]) Update(ctx context.Context, entity *T) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, entity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := identity(entity)
	row, ok := m.rows[id]
	if !ok || trashed(row) {
		return store.ErrNotFound
	}
	c := *entity
	m.rows[id] = &c
	return nil
}

// Delete implements store.ResourceStore.
func (m *MockResourceStore[T]) Delete(ctx context.Context, id int64) (*T, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok || trashed(row) {
		return nil, store.ErrNotFound
	}

	if sd, ok := any(row).(domain.SoftDeletable); ok {
		sd.Trash(time.Now().UTC())
	} else {
		delete(m.rows, id)
	}
	c := *row
	return &c, nil
}

// Restore implements store.ResourceStore.
func (m *MockResourceStore[T]) Restore(ctx context.Context, id int64) (*T, error) {
	if m.RestoreFn != nil {
		return m.RestoreFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[id]
	if !ok || !trashed(row) {
		return nil, store.ErrNotFound
	}
	any(row).(domain.SoftDeletable).Untrash()
	c := *row
	return &c, nil
}

func identity[T any](e *T) int64 {
	if ent, ok := any(e).(domain.Entity); ok {
		return ent.Identity()
	}
	return 0
}

func setIdentity[T any](e *T, id int64) {
	if ent, ok := any(e).(domain.Entity); ok {
		ent.SetIdentity(id)
	}
}

func trashed[T any](e *T) bool {
	sd, ok := any(e).(domain.SoftDeletable)
	return ok && sd.Trashed()
}
