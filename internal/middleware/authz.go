package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staffhub/internal/authz"
)

// RequireAction gates a route group on the policy table. Handlers behind it
// can still apply record-level checks (owner vs admin).
func RequireAction(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no role in context"})
			return
		}
		role, _ := v.(string)
		if !authz.CanPerform(authz.Role(role), action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
