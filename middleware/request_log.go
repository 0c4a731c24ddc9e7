package middleware

import (
	"time"

	"hoteldesk/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one line per request to the daily log file,
// tagged with the terminal session id when present.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		sessionId, _ := c.Get("sessionId")
		status := c.Writer.Status()
		elapsed := time.Since(start)

		if status >= 500 {
			utils.LogError("%s %s -> %d (%v) session=%v", c.Request.Method, c.Request.URL.Path, status, elapsed, sessionId)
			return
		}
		utils.LogInfo("%s %s -> %d (%v) session=%v", c.Request.Method, c.Request.URL.Path, status, elapsed, sessionId)
	}
}
