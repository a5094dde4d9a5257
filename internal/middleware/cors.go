package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// localDevOrigins are always permitted so the frontend dev server works
// without extra configuration.
var localDevOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// CORS allows cross-origin requests from the configured origins and answers
// preflight OPTIONS requests directly.
func CORS(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins)+len(localDevOrigins))
	for _, o := range localDevOrigins {
		allowed[o] = true
	}
	for _, o := range origins {
		allowed[o] = true
	}

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, Origin, X-Requested-With")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
