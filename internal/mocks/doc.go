// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields that override the default behavior for a
// single method. Without overrides the stores keep their data in memory, so
// handler tests can exercise full create, read, delete and restore flows.
//
//	products := mocks.NewMockResourceStore[domain.Product]()
//	products.GetFn = func(ctx context.Context, id int64) (*domain.Product, error) {
//	    return nil, errors.New("boom")
//	}
package mocks
