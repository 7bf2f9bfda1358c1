package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ParsePagination reads the 1-indexed page and limit query params, falling
// back to the defaults on missing or malformed values.
func ParsePagination(c *gin.Context) (page int64, limit int64, skip int64) {
	page, err := strconv.ParseInt(c.Query("page"), 10, 64)
	if err != nil || page < 1 {
		page = DefaultPage
	}

	limit, err = strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}

	return page, limit, (page - 1) * limit
}

// PageCount returns ceil(total/limit).
func PageCount(total int64, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ParseLimit reads a bare limit query param for top-N endpoints.
func ParseLimit(c *gin.Context, fallback int64) int64 {
	limit, err := strconv.ParseInt(c.Query("limit"), 10, 64)
	if err != nil || limit < 1 {
		return fallback
	}
	return limit
}
