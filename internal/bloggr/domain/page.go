package domain

import "strings"

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// ListQuery is the paging and filtering input shared by list endpoints.
// SortBy is the wire field name; stores resolve it through their own
// allow-list and fall back to creation time.
type ListQuery struct {
	PageNumber      int
	PageSize        int
	SortBy          string
	SortDesc        bool
	SearchNameTerm  string
	SearchLoginTerm string
	SearchEmailTerm string
}

// Normalize clamps paging values to sane bounds.
func (q ListQuery) Normalize() ListQuery {
	if q.PageNumber < 1 {
		q.PageNumber = DefaultPageNumber
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	q.SearchNameTerm = strings.TrimSpace(q.SearchNameTerm)
	q.SearchLoginTerm = strings.TrimSpace(q.SearchLoginTerm)
	q.SearchEmailTerm = strings.TrimSpace(q.SearchEmailTerm)
	return q
}

func (q ListQuery) Offset() int { return (q.PageNumber - 1) * q.PageSize }

type Page[T any] struct {
	PageNumber int
	PageSize   int
	TotalCount int
	Items      []T
}

func (p Page[T]) PagesCount() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalCount + p.PageSize - 1) / p.PageSize
}

// MapPage converts the items of a page, keeping its paging metadata.
func MapPage[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := Page[U]{
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		Items:      make([]U, 0, len(p.Items)),
	}
	for _, it := range p.Items {
		out.Items = append(out.Items, fn(it))
	}
	return out
}
