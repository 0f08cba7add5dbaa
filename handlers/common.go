// File: handlers/common.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// paginationParams parses page/itemsPerPage query params with sane floors.
func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	itemsPerPage, err := strconv.Atoi(c.DefaultQuery("itemsPerPage", "10"))
	if err != nil || itemsPerPage < 1 {
		itemsPerPage = 10
	}
	return page, itemsPerPage
}

// timeRangeParams parses the startTime/endTime query params (epoch millis).
func timeRangeParams(c *gin.Context) (int64, int64, bool) {
	start, err := strconv.ParseInt(c.Query("startTime"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	end, err := strconv.ParseInt(c.Query("endTime"), 10, 64)
	if err != nil || end < start {
		return 0, 0, false
	}
	return start, end, true
}
