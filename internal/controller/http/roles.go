package http

import (
	"fmt"
	"net/http"

	"reviewdb/internal/entity"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route on the ordered role hierarchy. It composes with
// AuthMiddleware, which must run first to populate user_role.
func RequireRole(required entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.UserRole(c.GetString("user_role"))
		if !role.AtLeast(required) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": fmt.Sprintf("%s rights required", required),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
