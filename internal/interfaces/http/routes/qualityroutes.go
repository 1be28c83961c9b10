package routes

import (
	"github.com/gin-gonic/gin"

	qualityhandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/quality"
)

type QualityRouteConfig struct {
	QualityHandler *qualityhandlers.Handler
	WriteLimit     gin.HandlerFunc
}

func SetupQualityRoutes(api *gin.RouterGroup, config *QualityRouteConfig) {
	controls := api.Group("/quality-controls")
	{
		controls.POST("", config.WriteLimit, config.QualityHandler.Submit)
		controls.GET("", config.QualityHandler.List)
		controls.GET("/:id", config.QualityHandler.Get)
	}
}
