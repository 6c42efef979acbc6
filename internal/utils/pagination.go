// Package utils provides small, generic helpers shared by the transport
// layers. They hold no domain logic.
package utils

import "strconv"

// Pagination bounds, applied by ClampPage.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// AtoiDefault parses s as an int and returns def when s is empty or invalid.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// ClampPage parses page and page_size query values and bounds them:
// page >= 1 and 1 <= size <= MaxPageSize.
func ClampPage(pageRaw, sizeRaw string) (page, size int) {
	page = AtoiDefault(pageRaw, 1)
	if page < 1 {
		page = 1
	}
	size = AtoiDefault(sizeRaw, DefaultPageSize)
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}

// Pagination describes one page of a list.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// Paginate slices items (already in display order) to the requested page.
// A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, size int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	p := Pagination{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: pages,
		HasNext:    page < pages,
	}
	start := (page - 1) * size
	if start >= total {
		return []T{}, p
	}
	end := min(start+size, total)
	return items[start:end], p
}
