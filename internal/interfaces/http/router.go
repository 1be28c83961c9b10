package http

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/polyforma/qualitrack/internal/interfaces/http/middleware"
	"github.com/polyforma/qualitrack/internal/interfaces/http/routes"

	_ "github.com/polyforma/qualitrack/docs"
)

// APIPrefix is where every authenticated endpoint lives.
const APIPrefix = "/api/v1"

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	// PDFs are already compressed
	c.engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{`.*/download$`})))

	c.engine.GET("/health", c.hdlrs.healthHandler.Health)
	if c.cfg.Server.Mode != "release" {
		c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := c.engine.Group(APIPrefix)
	api.Use(c.authMiddleware.RequireAuth())

	writeLimit := c.writeLimit()

	routes.SetupProductionRoutes(api, &routes.ProductionRouteConfig{
		ProductionHandler: c.hdlrs.productionHandler,
		QualityHandler:    c.hdlrs.qualityHandler,
		WriteLimit:        writeLimit,
	})
	routes.SetupQualityRoutes(api, &routes.QualityRouteConfig{
		QualityHandler: c.hdlrs.qualityHandler,
		WriteLimit:     writeLimit,
	})
	routes.SetupAlertRoutes(api, &routes.AlertRouteConfig{
		AlertHandler: c.hdlrs.alertHandler,
		WriteLimit:   writeLimit,
	})
	routes.SetupCertificateRoutes(api, &routes.CertificateRouteConfig{
		CertificateHandler: c.hdlrs.certificateHandler,
		WriteLimit:         writeLimit,
	})
	routes.SetupNonConformityRoutes(api, &routes.NonConformityRouteConfig{
		NonConformityHandler: c.hdlrs.nonConformityHandler,
		WriteLimit:           writeLimit,
	})
}

func (c *Container) writeLimit() gin.HandlerFunc {
	if c.rateLimiter == nil {
		return func(ctx *gin.Context) { ctx.Next() }
	}
	return c.rateLimiter.Limit()
}
