// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"carkeep/pkg/auth"
	"carkeep/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the context key under which the authenticated user's ID is stored.
const UserIDKey = "userID"

// Auth returns a middleware that validates bearer tokens and stores the
// authenticated user's ID in the request context.
func Auth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "No token, authorization denied")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Unauthorized(c, "Token is not valid")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Token is not valid")
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns empty string if not set.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}
	return userID.(string)
}
