package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

type Pagination struct {
	Page  int
	Limit int
	Skip  int64
}

// GetPagination parses page/limit query parameters, clamping limit to
// [1, MaxPageSize] and page to a minimum of 1.
func GetPagination(c *gin.Context) Pagination {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	return ClampPagination(page, limit)
}

func ClampPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Skip:  int64(page-1) * int64(limit),
	}
}
