package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads page and page_size from the query string,
// applying defaults and the page size cap.
func ParsePagination(c *gin.Context) Pagination {
	pageSize := parseQueryInt(c, "page_size", constants.DefaultPageSize)
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{
		Page:     parseQueryInt(c, "page", constants.DefaultPage),
		PageSize: pageSize,
	}
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// ParseOptionalUint returns nil for an absent or malformed query value.
func ParseOptionalUint(c *gin.Context, key string) *uint {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil || n == 0 {
		return nil
	}
	u := uint(n)
	return &u
}
