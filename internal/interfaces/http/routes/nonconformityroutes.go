package routes

import (
	"github.com/gin-gonic/gin"

	nonconformityhandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/nonconformity"
)

type NonConformityRouteConfig struct {
	NonConformityHandler *nonconformityhandlers.Handler
	WriteLimit           gin.HandlerFunc
}

func SetupNonConformityRoutes(api *gin.RouterGroup, config *NonConformityRouteConfig) {
	ncs := api.Group("/non-conformities")
	{
		ncs.POST("", config.WriteLimit, config.NonConformityHandler.Create)
		ncs.GET("", config.NonConformityHandler.List)

		ncs.POST("/:id/resolve", config.WriteLimit, config.NonConformityHandler.Resolve)
		// PATCH for workflow state changes
		ncs.PATCH("/:id/status", config.WriteLimit, config.NonConformityHandler.SetStatus)

		ncs.GET("/:id", config.NonConformityHandler.Get)
	}
}
