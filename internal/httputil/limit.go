package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseLimit reads the limit query parameter. Missing, non-numeric and non-positive
// values fall back to defaultLimit; values above maxLimit are capped.
func ParseLimit(c *gin.Context, defaultLimit, maxLimit int) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}
	return min(limit, maxLimit)
}
