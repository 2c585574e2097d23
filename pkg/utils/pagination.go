package utils

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DefaultPagination is page 1 of 10.
func DefaultPagination() PaginationParams {
	return PaginationParams{Page: DefaultPage, Limit: DefaultLimit}
}

// Normalize applies the defaults to missing or out-of-range values.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Merge overlays the non-zero fields of patch.
func (p PaginationParams) Merge(patch PaginationParams) PaginationParams {
	if patch.Page > 0 {
		p.Page = patch.Page
	}
	if patch.Limit > 0 {
		p.Limit = patch.Limit
	}
	return p
}

// Offset is the zero-based index of the first item on the page.
func (p PaginationParams) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// Apply writes page and limit into q.
func (p PaginationParams) Apply(q url.Values) {
	n := p.Normalize()
	q.Set("page", strconv.Itoa(n.Page))
	q.Set("limit", strconv.Itoa(n.Limit))
}

// ParsePagination reads page and limit from q, applying the defaults.
func ParsePagination(q url.Values) PaginationParams {
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return PaginationParams{Page: page, Limit: limit}.Normalize()
}

// TotalPages returns the number of pages needed for total items.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit > 0 {
		pages++
	}
	return pages
}
