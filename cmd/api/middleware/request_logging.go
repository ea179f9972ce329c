package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/trace"
	"portfolio-blog/internal/logger"
)

// RequestLogging logs one line per request once the response is written.
// Request bodies are not logged; they may carry visitor contact details.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		fields := logger.Fields{
			"method":      method,
			"path":        path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"client_ip":   c.ClientIP(),
			"request_id":  trace.RequestIDFromContext(c.Request.Context()),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorWithFields("completed request", fields)
			return
		}
		logger.InfoWithFields("completed request", fields)
	}
}
