package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseProjectID(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func parseMilestoneIndex(c *gin.Context) (uint32, error) {
	idx, err := strconv.ParseUint(c.Param("index"), 10, 32)
	return uint32(idx), err
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
