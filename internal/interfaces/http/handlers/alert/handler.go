package alert

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polyforma/qualitrack/internal/application/alert/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/common"
	"github.com/polyforma/qualitrack/internal/shared/logger"
	"github.com/polyforma/qualitrack/internal/shared/utils"
)

type ResolveAlertRequest struct {
	Notes string `json:"notes" binding:"max=2000"`
}

type Handler struct {
	listUC    usecases.ListAlertsExecutor
	getUC     usecases.GetAlertExecutor
	resolveUC usecases.ResolveAlertExecutor
	dismissUC usecases.DismissAlertExecutor
	logger    logger.Interface
}

func NewHandler(
	listUC usecases.ListAlertsExecutor,
	getUC usecases.GetAlertExecutor,
	resolveUC usecases.ResolveAlertExecutor,
	dismissUC usecases.DismissAlertExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listUC:    listUC,
		getUC:     getUC,
		resolveUC: resolveUC,
		dismissUC: dismissUC,
		logger:    logger,
	}
}

// List handles GET /alerts
// @Summary List alerts
// @Tags Alerts
// @Produce json
// @Param status query string false "activa, resuelta or descartada"
// @Param product_id query int false "Product"
// @Param production_record_id query int false "Production record"
// @Param created_from query string false "From date (YYYY-MM-DD)"
// @Param created_to query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /alerts [get]
func (h *Handler) List(c *gin.Context) {
	from, err := common.OptionalDateQuery(c, "created_from")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	to, err := common.OptionalDateQuery(c, "created_to")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	params := common.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAlertsQuery{
		Actor:              common.ActorFrom(c),
		Status:             common.OptionalStringQuery(c, "status"),
		ProductID:          utils.ParseOptionalUint(c, "product_id"),
		ProductionRecordID: utils.ParseOptionalUint(c, "production_record_id"),
		CreatedFrom:        from,
		CreatedTo:          to,
		Page:               params.Page,
		PageSize:           params.PageSize,
		SortBy:             params.SortBy,
		SortOrder:          params.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Alerts, result.TotalCount, result.Page, result.PageSize)
}

// Get handles GET /alerts/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetAlertQuery{
		Actor:   common.ActorFrom(c),
		AlertID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Resolve handles POST /alerts/:id/resolve
// @Summary Resolve an active alert
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path int true "Alert ID"
// @Param request body ResolveAlertRequest true "Resolution notes"
// @Success 200 {object} utils.APIResponse{data=dto.AlertDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /alerts/{id}/resolve [post]
func (h *Handler) Resolve(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveAlertCommand{
		Actor:   common.ActorFrom(c),
		AlertID: id,
		Notes:   req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert resolved", result)
}

// Dismiss handles POST /alerts/:id/dismiss
func (h *Handler) Dismiss(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.dismissUC.Execute(c.Request.Context(), usecases.DismissAlertCommand{
		Actor:   common.ActorFrom(c),
		AlertID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Alert dismissed", result)
}
