// Package pagination normalizes page/limit query parameters and shapes the
// list-response metadata.
package pagination

import "strconv"

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page  int
	Limit int
	Skip  int
}

// ParseParams never fails: malformed, zero, or negative input falls back to
// page 1 and the default limit; limit is clamped to [1, MaxLimit].
func ParseParams(rawPage, rawLimit string) Params {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

type Meta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// NewMeta reports totalPages = ceil(totalItems / limit).
func NewMeta(totalItems int64, page, limit int) Meta {
	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))
	return Meta{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   totalItems,
		ItemsPerPage: limit,
	}
}
