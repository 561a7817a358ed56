// Package listing holds the article listing query and the controller that drives a
// paginated, filtered, infinitely scrolled listing on top of it.
package listing

import "strings"

// AllCategories disables the category filter.
const AllCategories = "all"

// Query is the parameter set of one listing retrieval.
type Query struct {
	Category string `json:"category"`
	Search   string `json:"search"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

// Normalize clamps Page and PageSize into range, trims Search and maps an empty
// Category to AllCategories. maxPageSize <= 0 disables the upper bound.
func (q Query) Normalize(maxPageSize int) Query {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.PageSize < 1 {
		q.PageSize = 1
	}
	if maxPageSize > 0 && q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}

	q.Search = strings.TrimSpace(q.Search)
	if q.Category == "" {
		q.Category = AllCategories
	}

	return q
}

// Offset is the zero-based index of the first requested row.
func (q Query) Offset() int {
	return q.Page * q.PageSize
}

// CategoryFilter returns the category to filter by, or "" when every category matches.
func (q Query) CategoryFilter() string {
	if q.Category == AllCategories {
		return ""
	}
	return q.Category
}

// Page is one slice of the eligible items plus the count of all eligible items.
// PageSize is the page size the items were selected with after clamping, or 0 when the
// fetcher does not report it.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	PageSize int `json:"pageSize,omitempty"`
}

// HasMore reports whether rows remain after page pageIndex.
func HasMore(pageIndex, pageSize, total int) bool {
	return (pageIndex+1)*pageSize < total
}
