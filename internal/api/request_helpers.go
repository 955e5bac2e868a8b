package api

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/mart-api/internal/store"
	"github.com/spf13/cast"
)

// pathID extracts a positive integer id from the URL path. Malformed ids
// report false and are answered like unknown ones.
func pathID(r *http.Request, paramName string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, paramName), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// listQuery reads search, page, per_page and the allowed exact-match
// filters from the query string. Unparseable paging falls back to defaults.
func listQuery(r *http.Request, filters []string) store.ListQuery {
	values := r.URL.Query()

	q := store.ListQuery{
		Search:  strings.TrimSpace(values.Get("search")),
		Page:    cast.ToInt(values.Get("page")),
		PerPage: cast.ToInt(values.Get("per_page")),
	}

	for _, name := range filters {
		raw := strings.TrimSpace(values.Get(name))
		if raw == "" {
			continue
		}
		if q.Filters == nil {
			q.Filters = make(map[string]int64, len(filters))
		}
		id, err := cast.ToInt64E(raw)
		if err != nil || id <= 0 {
			// ids start at 1, so an unparseable value matches nothing
			id = 0
		}
		q.Filters[name] = id
	}

	return q.Normalize()
}

// inputID converts a validated integer field to an id.
func inputID(v any) (int64, bool) {
	f, err := cast.ToFloat64E(v)
	if err != nil || f < 1 || f > math.MaxInt64 || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}
