package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// currentUserID extracts the authenticated user id set by the auth
// middleware. JWT claims decode numbers as float64.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		return uint(v), true
	case uint:
		return v, true
	case string:
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(id), true
		}
	}
	return 0, false
}
