// auth.go - Token verification and role-based access control
//
// Every protected route runs Auth first, then RequireRole. Ownership is
// the third gate and lives in the database layer: ownership-gated
// queries filter on posted_by, so a resource the caller does not own is
// reported as not found rather than forbidden.

package middleware

import (
	"net/http"
	"strings"

	"go-job-portal/config"
	"go-job-portal/database"
	"go-job-portal/models"
	"go-job-portal/token"

	"github.com/gin-gonic/gin"
)

const userContextKey = "current_user"

// Auth verifies the Bearer token and re-fetches the user record by id.
// The token carries only id and role; name, email, and the current role
// always come from the database, so a stale token cannot smuggle stale
// identity data into a request.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No token provided. Access denied.",
			})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		cfg := config.Load()
		claims, err := token.Verify(cfg.JWTSecret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token.",
			})
			return
		}

		// Tokens issued for since-deleted accounts die here.
		user, err := database.UserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token. User not found.",
			})
			return
		}

		c.Set(userContextKey, *user)
		c.Next()
	}
}

// RequireRole allows the request through only when the authenticated
// user's role is in the allowed set. Must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required.",
			})
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied. Insufficient permissions.",
		})
	}
}

// CurrentUser returns the authenticated user stored by Auth. Handlers
// behind Auth can assume it is present.
func CurrentUser(c *gin.Context) models.User {
	user, _ := currentUser(c)
	return user
}

func currentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
