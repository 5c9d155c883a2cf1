package middleware

import (
	"fmt"
	"time"

	"travelbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// Logger emits one access line per request through the shared event logger.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		utils.LogEvent(GetRequestID(c), "http", "request", fmt.Sprintf(
			"%s %s status=%d latency_ms=%.3f ip=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds())/1000.0,
			c.ClientIP(),
		))
	}
}
