// Package paging shapes over-fetched query results into cursor pages.
//
// Repositories are asked for limit+1 rows; the extra row only signals that
// another page exists and is never returned to the caller.
package paging

import (
	"strconv"
	"strings"
)

// Page is one page of a cursor-paginated listing
type Page[T any] struct {
	Cursor  *string `json:"cursor"`
	Data    []T     `json:"data"`
	HasMore bool    `json:"hasMore"`
}

// NewPage trims rows (fetched with limit+1) down to limit and derives the next
// cursor from the last row kept. An empty page has a nil cursor.
func NewPage[T any](rows []T, limit int, cursorOf func(T) string) *Page[T] {
	hasMore := false
	if limit >= 0 && len(rows) > limit {
		rows = rows[:limit]
		hasMore = true
	}
	if rows == nil {
		rows = make([]T, 0)
	}

	page := &Page[T]{
		Data:    rows,
		HasMore: hasMore,
	}
	if len(rows) > 0 {
		cursor := cursorOf(rows[len(rows)-1])
		page.Cursor = &cursor
	}
	return page
}

// NormalizeLimit replaces non-positive limits with def and clamps to max
func NormalizeLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if max > 0 && limit > max {
		return max
	}
	return limit
}

// ParseLimit reads a limit query value. Anything that is not an integer
// yields 0 so NormalizeLimit falls back to the default.
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return limit
}

// OptionalString returns nil for blank strings
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
