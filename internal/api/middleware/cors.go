package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ConfigCORS allows the configured frontend origins plus localhost for
// development. Credentials stay on so the admin cookie survives CORS.
func ConfigCORS(allowedCORSDomains string) gin.HandlerFunc {
	var domains []string
	for _, domain := range strings.Split(allowedCORSDomains, ",") {
		if trimmed := strings.TrimSpace(domain); trimmed != "" {
			domains = append(domains, trimmed)
		}
	}

	return cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) bool {
			for _, domain := range domains {
				if origin == domain {
					return true
				}
			}

			return strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1")
		},
		MaxAge: 12 * time.Hour,
	})
}
