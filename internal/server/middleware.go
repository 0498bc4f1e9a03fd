package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/atlashr/employee-api/internal/metrics"
)

// metricsMiddleware observes request counts and durations per route template.
func metricsMiddleware(mtr *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		mtr.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		mtr.HTTPRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
