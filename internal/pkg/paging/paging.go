// Package paging holds the filter-sort-paginate primitive shared by the order, customer and
// product listings.
package paging

import (
	"slices"
	"strings"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Direction is the sort direction of a listing.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending" in any case.
// Anything else falls back to Descending.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending
	default:
		return Descending
	}
}

// IsDirection reports whether s names a direction explicitly.
func IsDirection(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending", "desc", "descending":
		return true
	}
	return false
}

func (d Direction) String() string {
	if d == Ascending {
		return "Asc"
	}
	return "Desc"
}

// ClampPage returns page, or 1 when page is below 1.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// ClampPageSize returns DefaultPageSize for sizes below 1 and caps at MaxPageSize.
func ClampPageSize(pageSize int) int {
	if pageSize < 1 {
		return DefaultPageSize
	}
	if pageSize > MaxPageSize {
		return MaxPageSize
	}
	return pageSize
}

// Offset is the number of rows to skip for a 1-based page.
func Offset(page, pageSize int) int {
	if page < 1 || pageSize < 1 {
		return 0
	}
	return (page - 1) * pageSize
}

// TotalPages is ceil(total/pageSize), or 0 when pageSize is 0.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Result is one page of a listing plus its metadata.
type Result[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

func NewResult[T any](items []T, page, pageSize, total int) Result[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Result[T]{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
		TotalPages: TotalPages(total, pageSize),
	}
}

// MapResult projects the items of a page and keeps its metadata.
func MapResult[T, U any](r Result[T], fn func(T) U) Result[U] {
	items := make([]U, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, fn(item))
	}
	return Result[U]{
		Items:      items,
		Page:       r.Page,
		PageSize:   r.PageSize,
		TotalCount: r.TotalCount,
		TotalPages: r.TotalPages,
	}
}

// Spec describes a listing over an in-memory collection. All predicates must hold for an
// item to match. Compare must be a total order for pages to partition the matching set.
type Spec[T any] struct {
	Predicates []func(T) bool
	Compare    func(a, b T) int
	Direction  Direction
}

// Apply filters, sorts and slices items. It returns the page and the number of matching
// items before slicing. The input slice is not modified.
func Apply[T any](items []T, spec Spec[T], page, pageSize int) ([]T, int) {
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, spec.Predicates) {
			matched = append(matched, item)
		}
	}

	if spec.Compare != nil {
		slices.SortStableFunc(matched, func(a, b T) int {
			if spec.Direction == Descending {
				return spec.Compare(b, a)
			}
			return spec.Compare(a, b)
		})
	}

	total := len(matched)
	start := Offset(page, pageSize)
	if start >= total || pageSize < 1 {
		return make([]T, 0), total
	}
	end := min(start+pageSize, total)

	return matched[start:end], total
}

func matches[T any](item T, predicates []func(T) bool) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}
