package query

import "github.com/polyforma/qualitrack/internal/shared/constants"

// PageFilter carries 1-based paging; zero values fall back to defaults.
type PageFilter struct {
	Page     int
	PageSize int
}

func (f PageFilter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}

type SortFilter struct {
	SortBy    string
	SortOrder string
}

func (f SortFilter) IsDescending() bool {
	return f.SortOrder == "desc" || f.SortOrder == "DESC"
}

// OrderClause builds "<column> ASC|DESC" from a whitelist. Unknown sort
// fields fall back to defaultColumn, descending.
func (f SortFilter) OrderClause(allowed map[string]string, defaultColumn string) string {
	column, ok := allowed[f.SortBy]
	if !ok {
		return defaultColumn + " DESC"
	}
	if f.IsDescending() {
		return column + " DESC"
	}
	return column + " ASC"
}

type BaseFilter struct {
	PageFilter
	SortFilter
}
