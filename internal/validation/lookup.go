package validation

import "context"

// Lookup answers the datastore questions behind the exists and unique rules.
type Lookup interface {
	// Exists reports whether table has at least one row whose column equals
	// value. String comparisons are case-insensitive.
	Exists(ctx context.Context, table, column string, value any) (bool, error)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(ctx context.Context, table, column string, value any) (bool, error)

// Exists implements Lookup.
func (f LookupFunc) Exists(ctx context.Context, table, column string, value any) (bool, error) {
	return f(ctx, table, column, value)
}
