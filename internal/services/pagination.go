package services

import "github.com/confiance888/BlogMagment/internal/apperrors"

// maxPageSize caps the page size any list endpoint will serve
const maxPageSize = 100

// pageOffset validates pagination parameters and returns the store offset.
// Page indexes are zero-based.
func pageOffset(page, size int) (int, error) {
	if page < 0 {
		return 0, apperrors.BadRequest("page index must not be negative")
	}
	if size < 1 {
		return 0, apperrors.BadRequest("page size must be positive")
	}
	if size > maxPageSize {
		return 0, apperrors.BadRequest("page size must not exceed 100")
	}
	return page * size, nil
}
