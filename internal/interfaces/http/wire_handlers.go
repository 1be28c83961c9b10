package http

import (
	"context"
	"time"

	"github.com/polyforma/qualitrack/internal/infrastructure/database"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers"
	alertHandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/alert"
	certificateHandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/certificate"
	nonconformityHandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/nonconformity"
	productionHandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/production"
	qualityHandlers "github.com/polyforma/qualitrack/internal/interfaces/http/handlers/quality"
	"github.com/polyforma/qualitrack/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler        *handlers.HealthHandler
	productionHandler    *productionHandlers.Handler
	qualityHandler       *qualityHandlers.Handler
	alertHandler         *alertHandlers.Handler
	certificateHandler   *certificateHandlers.Handler
	nonConformityHandler *nonconformityHandlers.Handler
}

type databasePinger struct{}

func (databasePinger) Ping(ctx context.Context) error { return database.Ping(ctx) }

func (c *Container) initHandlers() {
	u := c.ucs

	c.hdlrs = &allHandlers{
		healthHandler:     handlers.NewHealthHandler(databasePinger{}, c.log),
		productionHandler: productionHandlers.NewHandler(u.createRecordUC, u.getRecordUC, u.listRecordsUC, c.log),
		qualityHandler:    qualityHandlers.NewHandler(u.submitQualityUC, u.getQualityUC, u.listQualityUC, c.log),
		alertHandler:      alertHandlers.NewHandler(u.listAlertsUC, u.getAlertUC, u.resolveAlertUC, u.dismissAlertUC, c.log),
		certificateHandler: certificateHandlers.NewHandler(
			u.createCertificateUC,
			u.approveCertificateUC,
			u.rejectCertificateUC,
			u.getCertificateUC,
			u.listCertificatesUC,
			u.downloadCertificateUC,
			c.log,
		),
		nonConformityHandler: nonconformityHandlers.NewHandler(
			u.createNonConformityUC,
			u.getNonConformityUC,
			u.listNonConformitiesUC,
			u.resolveNonConformityUC,
			u.setNonConformityStatusUC,
			c.log,
		),
	}

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtService, c.log)
	if c.redis != nil && c.cfg.Server.WriteRateLimit > 0 {
		c.rateLimiter = middleware.NewRateLimiter(c.redis, c.cfg.Server.WriteRateLimit, time.Minute, c.log)
	}
}
