// response.go - Shared response helpers
//
// Every response carries a success flag and, on failure, a
// human-readable message. Raw errors never reach the caller.

package handlers

import "github.com/gin-gonic/gin"

// fail writes the standard error shape.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
