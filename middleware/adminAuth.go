package middleware

import (
	"net/http"
	"strings"

	"villamar/services/admin"

	"github.com/gin-gonic/gin"
)

// AdminSessionMiddleware guards dashboard routes behind the session gate.
func AdminSessionMiddleware(gate *admin.SessionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if !gate.Check(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			return
		}

		c.Set("adminToken", token)
		c.Next()
	}
}
