package router

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger logs method, path, status and latency, tagged with a request id.
// The id is echoed in the X-Request-ID response header so clients can quote
// it when reporting problems.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", reqID)

		start := time.Now()
		c.Next()
		duration := time.Since(start)
		log.Printf("[%s] %s %s -> %d (%s)", reqID, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration)
	}
}
