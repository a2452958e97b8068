package endpoint

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saathilabs/interview-coach/version"
)

// Info returns a handler that reports service and build information.
func Info(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": serviceName,
			"version": version.Get(),
		})
	}
}
