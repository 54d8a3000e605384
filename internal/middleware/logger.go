package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with an X-Request-ID so a draft mutation
// can be tied to its access-log line. An inbound ID is kept; otherwise
// one is minted.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Logger writes one access-log line per request. The draft API is
// chatty (a line per keystrokeish field update), so the line stays
// short: method, path, status, latency, request id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		requestID := c.GetString("request_id")
		log.Printf("%s %s -> %d (%s) id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			requestID,
		)
	}
}

// Recovery converts a handler panic into a 500 instead of dropping the
// connection; the in-memory draft survives the request.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
