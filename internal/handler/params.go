package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-shareit/internal/middleware"
	"github.com/shareit-platform/service-shareit/internal/response"
)

// pathID parses a positive numeric path parameter, writing a 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// callerID returns the id placed by the sharer header middleware.
func callerID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		response.BadRequest(c, "missing "+middleware.SharerUserIDHeader+" header")
	}
	return id, ok
}
