package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polyforma/qualitrack/internal/shared/logger"
	"github.com/polyforma/qualitrack/internal/shared/utils"
)

const serviceName = "qualitrack"

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Interface
}

func NewHealthHandler(db Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

type healthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// Health reports liveness and database reachability.
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	utils.APIResponse
//	@Failure	503	{object}	utils.APIResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := healthResponse{Status: "ok", Service: serviceName, Database: "up"}
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Warnw("health check database ping failed", "error", err)
		resp.Status = "degraded"
		resp.Database = "down"
		utils.SuccessResponse(c, http.StatusServiceUnavailable, "", resp)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
