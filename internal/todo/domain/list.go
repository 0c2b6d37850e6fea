package domain

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	MaxSearchLen = 255

	// MaxOffset bounds the row offset. Pages beyond it are simply empty.
	MaxOffset = math.MaxInt32
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Sort columns. Todos accept created/due/priority, categories created/name.
const (
	SortByCreatedAt = "createdAt"
	SortByDueDate   = "dueDate"
	SortByPriority  = "priority"
	SortByName      = "name"
)

// ListParams carries the paging, search and sort options shared by every
// list endpoint.
type ListParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder SortOrder
}

// Normalize applies defaults and clamps the limit.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.SortBy == "" {
		p.SortBy = SortByCreatedAt
	}
	if p.SortOrder != SortAsc {
		p.SortOrder = SortDesc
	}
	return p
}

// Offset is the number of rows before the page. It saturates at MaxOffset
// rather than overflowing for absurd page numbers.
func (p ListParams) Offset() int {
	if p.Page < 1 || p.Limit < 1 {
		return 0
	}
	if p.Page-1 > MaxOffset/p.Limit {
		return MaxOffset
	}
	return (p.Page - 1) * p.Limit
}

type TodoFilter struct {
	ListParams
	Completed  *bool
	Priority   *Priority
	CategoryID *string
}

type CategoryFilter struct {
	ListParams
}

type PageMeta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// Page is one slice of a list result.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPage assembles a page from the rows of p and the total match count.
func NewPage[T any](items []T, p ListParams, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return Page[T]{
		Data: items,
		Meta: PageMeta{
			Page:            p.Page,
			Limit:           p.Limit,
			Total:           total,
			TotalPages:      totalPages,
			HasNextPage:     p.Page < totalPages,
			HasPreviousPage: p.Page > 1,
		},
	}
}
