package mocks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/phrazzld/mart-api/internal/validation"
)

// MockLookup implements validation.Lookup over an in-memory set of values.
type MockLookup struct {
	ExistsFn func(ctx context.Context, table, column string, value any) (bool, error)

	mu   sync.Mutex
	rows map[string]bool
}

var _ validation.Lookup = (*MockLookup)(nil)

// NewMockLookup creates a lookup that finds nothing until values are added.
func NewMockLookup() *MockLookup {
	return &MockLookup{rows: make(map[string]bool)}
}

// Add registers values as present in table.column. Strings match
// case-insensitively, as in postgres.Lookup.
func (m *MockLookup) Add(table, column string, values ...any) *MockLookup {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range values {
		m.rows[lookupKey(table, column, v)] = true
	}
	return m
}

// Exists implements validation.Lookup.
func (m *MockLookup) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, table, column, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[lookupKey(table, column, value)], nil
}

func lookupKey(table, column string, value any) string {
	switch v := value.(type) {
	case string:
		return table + "." + column + "=" + strings.ToLower(v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%s.%s=%d", table, column, int64(v))
		}
	}
	return fmt.Sprintf("%s.%s=%v", table, column, value)
}
