package middleware

import (
	"net/http"
	"strings"

	"payment-gateway/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIKeyAuth guards the merchant API with a static X-API-Key check
// against the comma-separated API_KEYS allow-list.
//
// An empty allow-list is a server misconfiguration in production (500)
// but permissive with a warning in local development, so the demo runs
// without any setup.
func APIKeyAuth(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key is required"})
			return
		}

		validKeys := parseKeys(config.API_KEYS)
		if len(validKeys) == 0 {
			if config.IsProduction() {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "API key configuration missing. Please set API_KEYS environment variable.",
				})
				return
			}
			logger.Warn("[DEV ONLY] No API_KEYS configured. Accepting any API key for local development.")
			c.Next()
			return
		}

		for _, k := range validKeys {
			if k == apiKey {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
	}
}

func parseKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
