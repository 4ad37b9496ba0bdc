package middleware

import (
	"net/http"
	"strings"

	"morisbiz/utils"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the moderation endpoints. It only establishes
// identity; the handlers assume the caller is authorized once this passes.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateAdminToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		adminID, _ := claims["sub"].(string)
		if adminID == "" {
			adminID = "admin"
		}
		c.Set("adminID", adminID)
		c.Set("isAdmin", true)
		c.Next()
	}
}
