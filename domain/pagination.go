package domain

import (
	"encoding/json"
	"math"
)

// PaginatedResult wraps one page of items together with the total row
// count matching the filter before offset/limit was applied.
type PaginatedResult[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

func NewPaginatedResult[T any](items []T, total int64, page, perPage int) PaginatedResult[T] {
	return PaginatedResult[T]{Items: items, Total: total, Page: page, PerPage: perPage}
}

// TotalPages is 0 when PerPage <= 0; the degenerate case must not panic.
func (p PaginatedResult[T]) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}
	return int(math.Ceil(float64(p.Total) / float64(p.PerPage)))
}

func (p PaginatedResult[T]) HasNext() bool {
	return p.Page < p.TotalPages()
}

func (p PaginatedResult[T]) HasPrev() bool {
	return p.Page > 1
}

func (p PaginatedResult[T]) NextPage() *int {
	if !p.HasNext() {
		return nil
	}
	next := p.Page + 1
	return &next
}

func (p PaginatedResult[T]) PrevPage() *int {
	if !p.HasPrev() {
		return nil
	}
	prev := p.Page - 1
	return &prev
}

func (p PaginatedResult[T]) MarshalJSON() ([]byte, error) {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return json.Marshal(struct {
		Items      []T   `json:"items"`
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PerPage    int   `json:"perPage"`
		TotalPages int   `json:"totalPages"`
		HasNext    bool  `json:"hasNext"`
		HasPrev    bool  `json:"hasPrev"`
		NextPage   *int  `json:"nextPage"`
		PrevPage   *int  `json:"prevPage"`
	}{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages(),
		HasNext:    p.HasNext(),
		HasPrev:    p.HasPrev(),
		NextPage:   p.NextPage(),
		PrevPage:   p.PrevPage(),
	})
}

// MapPaginated converts the items of a page while keeping the
// pagination envelope intact.
func MapPaginated[T, U any](p PaginatedResult[T], fn func(T) U) PaginatedResult[U] {
	items := make([]U, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, fn(item))
	}
	return PaginatedResult[U]{Items: items, Total: p.Total, Page: p.Page, PerPage: p.PerPage}
}
