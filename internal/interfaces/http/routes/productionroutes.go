package routes

import (
	"github.com/gin-gonic/gin"

	productionhandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/production"
	qualityhandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/quality"
)

type ProductionRouteConfig struct {
	ProductionHandler *productionhandlers.Handler
	QualityHandler    *qualityhandlers.Handler
	WriteLimit        gin.HandlerFunc
}

func SetupProductionRoutes(api *gin.RouterGroup, config *ProductionRouteConfig) {
	records := api.Group("/production-records")
	{
		records.POST("", config.WriteLimit, config.ProductionHandler.Create)
		records.GET("", config.ProductionHandler.List)

		// must come before /:id
		records.GET("/:id/quality-control", config.QualityHandler.GetByProductionRecord)

		records.GET("/:id", config.ProductionHandler.Get)
	}
}
