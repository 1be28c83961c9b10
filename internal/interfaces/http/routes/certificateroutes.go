package routes

import (
	"github.com/gin-gonic/gin"

	certificatehandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/certificate"
)

type CertificateRouteConfig struct {
	CertificateHandler *certificatehandlers.Handler
	WriteLimit         gin.HandlerFunc
}

func SetupCertificateRoutes(api *gin.RouterGroup, config *CertificateRouteConfig) {
	certificates := api.Group("/certificates")
	{
		certificates.POST("", config.WriteLimit, config.CertificateHandler.Create)
		certificates.GET("", config.CertificateHandler.List)

		certificates.POST("/:id/approve", config.WriteLimit, config.CertificateHandler.Approve)
		certificates.POST("/:id/reject", config.WriteLimit, config.CertificateHandler.Reject)
		certificates.GET("/:id/download", config.CertificateHandler.Download)

		certificates.GET("/:id", config.CertificateHandler.Get)
	}
}
