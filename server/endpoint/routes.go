package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/saathilabs/interview-coach/interview"
)

// Register mounts all API routes on the engine.
func Register(engine *gin.Engine, serviceName string, svc *interview.Service) {
	api := engine.Group("/api")
	api.GET("/health", Health(serviceName))
	api.GET("/info", Info(serviceName))
	api.GET("/question", Question(svc))
	api.POST("/question", Question(svc))
	api.POST("/analyze", Analyze(svc))
}
