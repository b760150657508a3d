// Package catalog translates browse state into backend catalog queries and
// keeps one result snapshot per browsing session.
package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultLimit is the fixed page size of the product grid.
const DefaultLimit = 8

// Query is the filter and pagination state of one catalog view. Zero values
// mean "not filtering on this"; they are omitted from the outgoing request.
type Query struct {
	Search      string
	MinPrice    string
	MaxPrice    string
	HasDiscount string
	Material    string
	Page        int
	Limit       int
}

// Values builds the backend query string. Page and limit are always present;
// every filter is skipped when empty, so the wire carries only active filters.
func (q Query) Values() url.Values {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	if s := strings.TrimSpace(q.Search); s != "" {
		params.Set("search", s)
	}
	if q.MinPrice != "" {
		params.Set("minPrice", q.MinPrice)
	}
	if q.MaxPrice != "" {
		params.Set("maxPrice", q.MaxPrice)
	}
	if q.HasDiscount != "" {
		params.Set("hasDiscount", q.HasDiscount)
	}
	if q.Material != "" {
		params.Set("material", q.Material)
	}
	return params
}
