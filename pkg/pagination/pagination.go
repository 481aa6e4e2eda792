// Package pagination implements the catalog's page-window policy: fixed page
// sizes, ceiling division for total pages, and out-of-range detection.
package pagination

import (
	catalogerrors "github.com/podshelf/catalog-api/pkg/errors"
)

const (
	// DefaultPageSize applies to general listings.
	DefaultPageSize = 10
	// SearchPageSize applies to title search.
	SearchPageSize = 20
)

// Request is a 1-indexed page over a fixed page size.
type Request struct {
	Page     int
	PageSize int
}

// Default returns a general-listing request for the given page.
func Default(page int) Request {
	return Request{Page: page, PageSize: DefaultPageSize}
}

// Search returns a search request for the given page.
func Search(page int) Request {
	return Request{Page: page, PageSize: SearchPageSize}
}

// Offset is the number of rows the store must skip.
func (r Request) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// Limit is the number of rows the store must return.
func (r Request) Limit() int {
	return r.PageSize
}

// TotalPages is ceil(totalCount / pageSize).
func (r Request) TotalPages(totalCount int64) int {
	return int((totalCount + int64(r.PageSize) - 1) / int64(r.PageSize))
}

// Validate checks the requested page against the computed total. An empty
// result set (zero pages) is a valid empty page, never an error; a page past
// a non-empty result set is out of range.
func (r Request) Validate(totalCount int64) error {
	totalPages := r.TotalPages(totalCount)
	if totalPages == 0 {
		return nil
	}
	if r.Page > totalPages {
		return catalogerrors.Newf(catalogerrors.KindOutOfRange,
			"Given page %d is bigger than total pages.", r.Page)
	}
	return nil
}
