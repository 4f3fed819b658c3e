package server

import (
	"net/http"
	"time"

	"sealed-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs every request with its status and latency.
// Server errors are logged at error level so they stand out from client mistakes.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	status := c.Writer.Status()
	fields := map[string]any{
		"method":    c.Request.Method,
		"path":      c.FullPath(),
		"raw_path":  c.Request.URL.Path,
		"status":    status,
		"client_ip": c.ClientIP(),
		"latency":   time.Since(start).String(),
	}
	if status >= http.StatusInternalServerError {
		utils.Error("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}
