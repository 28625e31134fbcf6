package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"fundvault.backend/pkg/metrics"
)

// MetricsMiddleware records request latency per route.
// Uses the route template, not the raw path, to keep label cardinality bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
