package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQueryNormalize(t *testing.T) {
	tests := []struct {
		name        string
		in          ListQuery
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"defaults", ListQuery{}, 1, DefaultPerPage, 0},
		{"negative page", ListQuery{Page: -3, PerPage: 5}, 1, 5, 0},
		{"third page", ListQuery{Page: 3, PerPage: 10}, 3, 10, 20},
		{"per page capped", ListQuery{Page: 2, PerPage: 1000}, 2, MaxPerPage, MaxPerPage},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			assert.Equal(t, tc.wantPage, got.Page)
			assert.Equal(t, tc.wantPerPage, got.PerPage)
			assert.Equal(t, tc.wantOffset, got.Offset())
		})
	}
}

func TestListQueryNormalizeKeepsFilters(t *testing.T) {
	q := ListQuery{Search: "milk", Filters: map[string]int64{"category_id": 4}}.Normalize()
	assert.Equal(t, "milk", q.Search)
	assert.Equal(t, int64(4), q.Filters["category_id"])
}
