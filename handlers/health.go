// health.go - Health check endpoint

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health reports that the API is up.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Job Portal API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
