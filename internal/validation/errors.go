package validation

import (
	"errors"
	"sort"
	"strings"
)

// ErrNoLookup is returned when a rule needs the datastore but the Validator
// was built without a Lookup.
var ErrNoLookup = errors.New("validation: exists/unique rule used without a lookup")

// FieldErrors maps each failing field to its first message.
type FieldErrors map[string]string

// Error implements error with a stable, sorted rendering.
func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e[k]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
