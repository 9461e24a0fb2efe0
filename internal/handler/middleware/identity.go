package middleware

import (
	"strconv"

	"lendshare/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// Caller identity is an opaque numeric user id carried in a header; the core
// holds no session state.
const (
	UserIDHeader = "X-Sharer-User-Id"

	ctxUserIDKey = "user_id"
)

func RequireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)
		if raw == "" {
			httperr.BadRequest(c, UserIDHeader+" header required")
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httperr.BadRequest(c, UserIDHeader+" header must be a positive integer")
			return
		}

		c.Set(ctxUserIDKey, id)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
