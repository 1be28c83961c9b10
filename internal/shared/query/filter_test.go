package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageFilter(t *testing.T) {
	assert.Equal(t, 0, PageFilter{}.Offset())
	assert.Equal(t, 20, PageFilter{}.Limit())
	assert.Equal(t, 100, PageFilter{Page: 1, PageSize: 500}.Limit())
	assert.Equal(t, 40, PageFilter{Page: 3, PageSize: 20}.Offset())
}

func TestSortFilter_OrderClause(t *testing.T) {
	allowed := map[string]string{"created_at": "created_at", "lot": "lot_number"}

	assert.Equal(t, "lot_number ASC", SortFilter{SortBy: "lot", SortOrder: "asc"}.OrderClause(allowed, "id"))
	assert.Equal(t, "created_at DESC", SortFilter{SortBy: "created_at", SortOrder: "DESC"}.OrderClause(allowed, "id"))
	assert.Equal(t, "id DESC", SortFilter{SortBy: "id; DROP TABLE lots"}.OrderClause(allowed, "id"))
}
