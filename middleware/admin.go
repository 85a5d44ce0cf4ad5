package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKey guards administrative endpoints with a shared secret passed in the
// X-Admin-Key header.
func AdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Admin-Key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
