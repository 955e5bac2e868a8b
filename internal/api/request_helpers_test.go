package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/mart-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{raw: "5", want: 5, wantOK: true},
		{raw: "0"},
		{raw: "-3"},
		{raw: "abc"},
		{raw: "1.5"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.raw)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			id, ok := pathID(req, "id")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestListQuery(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		q := listQuery(httptest.NewRequest(http.MethodGet, "/staff", nil), nil)
		assert.Equal(t, store.ListQuery{Page: 1, PerPage: store.DefaultPerPage}, q)
	})

	t.Run("paging search and filters", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/invoice-items?search=+tea+&page=3&per_page=2&invoice_id=7&product_id=x&other=1", nil)
		q := listQuery(req, []string{"invoice_id", "product_id"})

		assert.Equal(t, "tea", q.Search)
		assert.Equal(t, 3, q.Page)
		assert.Equal(t, 2, q.PerPage)
		assert.Equal(t, map[string]int64{"invoice_id": 7, "product_id": 0}, q.Filters)
	})

	t.Run("garbage paging", func(t *testing.T) {
		t.Parallel()
		q := listQuery(httptest.NewRequest(http.MethodGet, "/staff?page=abc&per_page=1000", nil), nil)
		assert.Equal(t, 1, q.Page)
		assert.Equal(t, store.MaxPerPage, q.PerPage)
	})
}

func TestInputID(t *testing.T) {
	t.Parallel()

	id, ok := inputID(float64(5))
	assert.True(t, ok)
	assert.Equal(t, int64(5), id)

	id, ok = inputID("12")
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	for _, bad := range []any{float64(0), float64(-1), 1.5, "abc", nil} {
		_, ok := inputID(bad)
		assert.False(t, ok, "%v", bad)
	}
}
