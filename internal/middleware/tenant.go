package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantGuard returns middleware that ensures the verified claims carry a
// tenant. It relies on AuthMiddleware having already run.
func TenantGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok || claims.TenantID == uuid.Nil {
			abortUnauthorized(c, "tenant context required")
			return
		}
		c.Next()
	}
}
