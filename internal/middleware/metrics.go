package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPRecorder receives per-request measurements.
type HTTPRecorder interface {
	RequestStarted()
	RequestFinished(route, method string, status int, elapsed time.Duration)
}

// Metrics records request counts, latency and in-flight requests. The route
// label is the matched route template to keep cardinality bounded.
func Metrics(rec HTTPRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec.RequestStarted()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		rec.RequestFinished(route, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
