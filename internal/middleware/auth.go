package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"showroomos/internal/domain"
	"showroomos/internal/service"
)

// ContextKeyClaims is the gin context key the verified token claims are
// stored under. Everything else (tenant, user, role) is derived from them.
const ContextKeyClaims = "auth_claims"

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   gin.H{"code": "UNAUTHORIZED", "message": message},
	})
}

func abortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error":   gin.H{"code": "FORBIDDEN", "message": message},
	})
}

// AuthMiddleware returns Gin middleware that verifies the bearer token and
// stores its claims on the request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "missing or invalid authorization header")
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// RequireRole returns middleware that allows only the listed roles through.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abortForbidden(c, "authentication required")
			return
		}
		for _, r := range roles {
			if claims.Role == r {
				c.Next()
				return
			}
		}
		abortForbidden(c, "insufficient permissions")
	}
}

// GetClaims returns the verified token claims, if AuthMiddleware ran.
func GetClaims(c *gin.Context) (*service.Claims, bool) {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*service.Claims)
	return claims, ok
}

// GetTenantID extracts the authenticated tenant ID from the Gin context.
func GetTenantID(c *gin.Context) (uuid.UUID, error) {
	claims, ok := GetClaims(c)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return claims.TenantID, nil
}

// GetUserID extracts the authenticated user ID from the Gin context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	claims, ok := GetClaims(c)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return claims.UserID, nil
}

// GetRole extracts the authenticated user's role from the Gin context.
func GetRole(c *gin.Context) domain.UserRole {
	claims, ok := GetClaims(c)
	if !ok {
		return ""
	}
	return claims.Role
}
