package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobboard/internal/pagination"
)

func TestParseParams(t *testing.T) {
	tests := []struct {
		name      string
		rawPage   string
		rawLimit  string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{name: "defaults when empty", rawPage: "", rawLimit: "", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "valid values", rawPage: "3", rawLimit: "20", wantPage: 3, wantLimit: 20, wantSkip: 40},
		{name: "non-numeric page", rawPage: "abc", rawLimit: "5", wantPage: 1, wantLimit: 5, wantSkip: 0},
		{name: "non-numeric limit", rawPage: "2", rawLimit: "xyz", wantPage: 2, wantLimit: 10, wantSkip: 10},
		{name: "zero page", rawPage: "0", rawLimit: "10", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "negative page", rawPage: "-5", rawLimit: "10", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "zero limit", rawPage: "1", rawLimit: "0", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "negative limit", rawPage: "1", rawLimit: "-1", wantPage: 1, wantLimit: 10, wantSkip: 0},
		{name: "limit above max clamped", rawPage: "1", rawLimit: "500", wantPage: 1, wantLimit: 100, wantSkip: 0},
		{name: "limit at max", rawPage: "2", rawLimit: "100", wantPage: 2, wantLimit: 100, wantSkip: 100},
		{name: "float input falls back", rawPage: "1.5", rawLimit: "2.5", wantPage: 1, wantLimit: 10, wantSkip: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.ParseParams(tt.rawPage, tt.rawLimit)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
			assert.Equal(t, tt.wantSkip, got.Skip)
		})
	}
}

// ParseParams must be total: whatever the input, page >= 1 and 1 <= limit <= 100.
func TestParseParams_Total(t *testing.T) {
	inputs := []string{"", "0", "-1", "-100", "1", "99", "100", "101", "abc", "1e3", " 5", "9999999999999999999"}
	for _, p := range inputs {
		for _, l := range inputs {
			got := pagination.ParseParams(p, l)
			assert.GreaterOrEqual(t, got.Page, 1, "page for (%q,%q)", p, l)
			assert.GreaterOrEqual(t, got.Limit, 1, "limit for (%q,%q)", p, l)
			assert.LessOrEqual(t, got.Limit, pagination.MaxLimit, "limit for (%q,%q)", p, l)
			assert.Equal(t, (got.Page-1)*got.Limit, got.Skip, "skip for (%q,%q)", p, l)
		}
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int64
		page       int
		limit      int
		wantPages  int
	}{
		{name: "exact multiple", totalItems: 100, page: 1, limit: 10, wantPages: 10},
		{name: "remainder rounds up", totalItems: 101, page: 1, limit: 10, wantPages: 11},
		{name: "fewer than one page", totalItems: 3, page: 1, limit: 10, wantPages: 1},
		{name: "no items", totalItems: 0, page: 1, limit: 10, wantPages: 0},
		{name: "limit one", totalItems: 7, page: 7, limit: 1, wantPages: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.totalItems, tt.page, tt.limit)
			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.page, meta.CurrentPage)
			assert.Equal(t, tt.totalItems, meta.TotalItems)
			assert.Equal(t, tt.limit, meta.ItemsPerPage)
		})
	}
}
