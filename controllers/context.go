package controllers

import (
	"github.com/gin-gonic/gin"
)

// userIDFromCtx reads the user id placed on the context by the auth
// middleware.
func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
