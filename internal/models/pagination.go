package models

// PagedResponse wraps a page of content with pagination metadata shared by
// all list endpoints. Page indexes are zero-based.
type PagedResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Last          bool  `json:"last"`
}

// NewPagedResponse builds a paged response for the given page slice,
// computing total pages and the last-page flag from the total element count.
func NewPagedResponse[T any](content []T, page, size int, total int64) *PagedResponse[T] {
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &PagedResponse[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}
}
