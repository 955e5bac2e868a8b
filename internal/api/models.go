package api

import (
	"github.com/phrazzld/mart-api/internal/domain"
	"github.com/phrazzld/mart-api/internal/store"
)

// RegisterResponse is the body of a successful registration.
type RegisterResponse struct {
	Status     string       `json:"status"`
	Message    string       `json:"message"`
	User       *domain.User `json:"user"`
	StatusCode int          `json:"status_code"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Status      string `json:"status"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn  int64        `json:"expires_in"`
	User       *domain.User `json:"user"`
	StatusCode int          `json:"status_code"`
}

// PageResponse is the paginator object returned as data by list endpoints.
// Items sit under "data" next to the paging counters.
type PageResponse[T any] struct {
	CurrentPage int   `json:"current_page"`
	Data        []T   `json:"data"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
	// From and To are the 1-based positions of the first and last item on
	// the page, null when the page is empty.
	From *int `json:"from"`
	To   *int `json:"to"`
}

// NewPageResponse renders a store page.
func NewPageResponse[T any](p *store.Page[T]) PageResponse[T] {
	resp := PageResponse[T]{
		CurrentPage: p.Page,
		Data:        p.Items,
		PerPage:     p.PerPage,
		Total:       p.Total,
		LastPage:    1,
	}
	if resp.Data == nil {
		resp.Data = []T{}
	}
	if p.PerPage > 0 && p.Total > 0 {
		resp.LastPage = int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
	}
	if n := len(resp.Data); n > 0 {
		from := (p.Page-1)*p.PerPage + 1
		to := from + n - 1
		resp.From, resp.To = &from, &to
	}
	return resp
}
