package routers

import (
	"github.com/gin-gonic/gin"

	"lfp/dpalert/internal/app/pkg/logger"
	"lfp/dpalert/internal/app/server/handlers/symptom"
	"lfp/dpalert/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由
func SetupRoutes(symptomHandler *symptom.Handler, log logger.Logger) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.CORS())
	r.Use(middlewares.AccessLog(log))
	r.Use(middlewares.Recovery(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "dpalert",
			"message": "Service is running",
		})
	})

	symptoms := r.Group("/symptoms")
	{
		symptoms.POST("", symptomHandler.Report)
		symptoms.GET("", symptomHandler.History)
	}

	return r
}
