// logger.go - Request logging middleware

package middleware

import (
	"time"

	"go-job-portal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request with method, path, status, and
// latency through the global zap logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Logger.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
