package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"bannylog-post-service/internal/metrics"
)

func Metrics(provider metrics.MetricsProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// Use the route pattern so ids do not explode label cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		provider.IncrementHTTPRequests(c.Request.Method, path, status)
		provider.RecordHTTPRequestDuration(c.Request.Method, path, status, time.Since(start))
	}
}
