package routes

import (
	"github.com/gin-gonic/gin"

	alerthandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/alert"
)

type AlertRouteConfig struct {
	AlertHandler *alerthandlers.Handler
	WriteLimit   gin.HandlerFunc
}

func SetupAlertRoutes(api *gin.RouterGroup, config *AlertRouteConfig) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", config.AlertHandler.List)

		alerts.POST("/:id/resolve", config.WriteLimit, config.AlertHandler.Resolve)
		alerts.POST("/:id/dismiss", config.WriteLimit, config.AlertHandler.Dismiss)

		alerts.GET("/:id", config.AlertHandler.Get)
	}
}
