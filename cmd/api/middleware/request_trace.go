package middleware

import (
	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/trace"
)

const (
	headerRequestID = "X-Request-Id"
	headerSpanID    = "X-Span-Id"
)

// RequestTrace makes sure every inbound request has a request id, stores it
// in the request context and echoes it in the response headers. An incoming
// X-Request-Id is kept when it passes trace.ValidRequestID.
func RequestTrace() gin.HandlerFunc {
	return func(c *gin.Context) {
		req := c.Request

		requestID := req.Header.Get(headerRequestID)
		if !trace.ValidRequestID(requestID) {
			requestID = trace.GenerateID()
		}

		// inbound span is 0; outbound calls count up from 1
		ctx := trace.WithRequestAndSpan(req.Context(), requestID, 0)
		c.Request = req.WithContext(ctx)

		currentSpan := trace.CurrentSpanID(ctx)
		c.Request.Header.Set(headerRequestID, requestID)
		c.Request.Header.Set(headerSpanID, currentSpan)
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerSpanID, currentSpan)

		c.Next()
	}
}
