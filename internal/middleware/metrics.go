// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"mkn-console/internal/metrics"
)

// scrapePath is excluded from instrumentation to avoid the scraper
// measuring itself.
const scrapePath = "/metrics"

// Metrics instruments each request with the Prometheus HTTP collectors:
// a counter by method/path/status, a latency histogram and an in-flight gauge.
// The route template (not the raw URL) is used as the path label so ids do
// not explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == scrapePath {
			c.Next()
			return
		}
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
