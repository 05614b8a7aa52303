package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pcmclub/pcm-api/internal/middleware"
)

// RoleMiddleware allows the request through when the caller's token carries
// any of the required roles. Must run after the auth middleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := middleware.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		hasRequiredRole := false
		for _, userRole := range claims.Roles {
			for _, requiredRole := range requiredRoles {
				if strings.EqualFold(userRole, requiredRole) {
					hasRequiredRole = true
					break
				}
			}
			if hasRequiredRole {
				break
			}
		}

		if !hasRequiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Forbidden",
				"message":  "You don't have permission to access this resource",
				"required": requiredRoles,
			})
			return
		}

		c.Next()
	}
}

// AdminMiddleware is a convenience middleware for admin-only access
func AdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("Admin")
}

// TreasurerOrAdminMiddleware guards treasury endpoints
func TreasurerOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("Treasurer", "Admin")
}

// RefereeOrAdminMiddleware guards match recording and team division
func RefereeOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("Referee", "Admin")
}
