// recovery.go - Panic recovery with a JSON error body

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"go-job-portal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into the standard 500 response shape. The
// stack trace is included in the body only in development mode; in
// production it goes to the log alone.
func Recovery(development bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		stack := string(debug.Stack())
		logger.Logger.Errorw("panic recovered",
			"error", fmt.Sprint(recovered),
			"path", c.Request.URL.Path,
			"stack", stack,
		)

		body := gin.H{
			"success": false,
			"message": "Internal server error",
		}
		if development {
			body["error"] = fmt.Sprint(recovered)
			body["stack"] = stack
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
