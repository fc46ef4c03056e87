package dto

import "github.com/shoplist/backend/internal/apperrors"

// PaginationArgs is the shared 1-based page window applied by every
// collection query.
type PaginationArgs struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// DefaultPagination is the window used when the caller sends nothing.
func DefaultPagination() PaginationArgs {
	return PaginationArgs{Page: 1, Limit: 10}
}

func (p PaginationArgs) Validate() error {
	if p.Page < 1 {
		return apperrors.Validation("page must be at least 1")
	}
	if p.Limit < 1 {
		return apperrors.Validation("limit must be at least 1")
	}
	return nil
}

// Offset converts the 1-based window into a row offset.
func (p PaginationArgs) Offset() int {
	return (p.Page - 1) * p.Limit
}

// SearchArgs carries an optional case-insensitive substring filter on the
// name field. Empty means no filter.
type SearchArgs struct {
	Search string `json:"search"`
}
