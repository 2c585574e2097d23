package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, PaginationParams{Page: 1, Limit: 10}, PaginationParams{}.Normalize())
	assert.Equal(t, PaginationParams{Page: 3, Limit: 100}, PaginationParams{Page: 3, Limit: 500}.Normalize())
}

func TestMerge(t *testing.T) {
	p := PaginationParams{Page: 4, Limit: 20}
	assert.Equal(t, PaginationParams{Page: 1, Limit: 20}, p.Merge(PaginationParams{Page: 1}))
	assert.Equal(t, PaginationParams{Page: 4, Limit: 50}, p.Merge(PaginationParams{Limit: 50}))
}

func TestApplyAndParse(t *testing.T) {
	q := url.Values{}
	PaginationParams{Page: 2, Limit: 25}.Apply(q)
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "25", q.Get("limit"))

	assert.Equal(t, PaginationParams{Page: 2, Limit: 25}, ParsePagination(q))
	assert.Equal(t, DefaultPagination(), ParsePagination(url.Values{"page": {"abc"}}))
}

func TestOffsetAndTotalPages(t *testing.T) {
	assert.Equal(t, 20, PaginationParams{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}
