// Package endpoint contains the gin handlers for the public API.
package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Health returns a handler that reports service liveness. It never fails.
func Health(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"service":   serviceName,
			"message":   "interview coach backend running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
