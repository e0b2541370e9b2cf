package middleware

import (
	"strings"

	"github.com/gbmfoods/admin-api/internal/presentation/http/dto/response"
	"github.com/gbmfoods/admin-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a JWT authentication middleware for staff routes
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("staff_email", claims.Email)
		c.Set("staff_name", claims.Name)

		c.Next()
	}
}

// GetStaffEmail returns the authenticated staff email, or "" when the
// request is unauthenticated.
func GetStaffEmail(c *gin.Context) string {
	return c.GetString("staff_email")
}
