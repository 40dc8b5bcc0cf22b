package downstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Organisations wraps the organisation service API
type Organisations struct {
	c *Client
}

// NewOrganisations builds the organisations gateway over a shared client
func NewOrganisations(c *Client) *Organisations { return &Organisations{c: c} }

// Ping implements the readiness probe
func (g *Organisations) Ping(ctx context.Context) error { return g.c.Ping(ctx) }

// Organisation is the organisation detail payload
type Organisation struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ReferenceNumber string   `json:"referenceNumber"`
	Nations         []string `json:"nations"`
}

// SearchPage is the downstream search result page, passed through to the caller
type SearchPage struct {
	Items       []Organisation `json:"items"`
	CurrentPage int            `json:"currentPage"`
	PageSize    int            `json:"pageSize"`
	TotalItems  int            `json:"totalItems"`
}

// Search queries organisations by a normalized term
func (g *Organisations) Search(ctx context.Context, query string, page, size int) (Outcome, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(size))
	return g.c.Do(ctx, "organisations.search", http.MethodGet, "/api/organisations/search?"+q.Encode(), nil)
}

// Get fetches one organisation by id
func (g *Organisations) Get(ctx context.Context, id string) (Outcome, error) {
	return g.c.Do(ctx, "organisations.get", http.MethodGet, "/api/organisations/"+url.PathEscape(id), nil)
}
