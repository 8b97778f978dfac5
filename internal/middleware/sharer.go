package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-platform/service-shareit/internal/response"
)

// SharerUserIDHeader carries the trusted id of the calling user.
const SharerUserIDHeader = "X-Sharer-User-Id"

const userIDKey = "user_id"

// SharerUserIDMiddleware requires a positive numeric caller id header.
func SharerUserIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerUserIDHeader)
		if raw == "" {
			response.BadRequest(c, "missing "+SharerUserIDHeader+" header")
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.BadRequest(c, "invalid "+SharerUserIDHeader+" header")
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

// GetUserID returns the caller id stored by SharerUserIDMiddleware.
func GetUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
