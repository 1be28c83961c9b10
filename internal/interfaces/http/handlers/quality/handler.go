package quality

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polyforma/qualitrack/internal/application/quality/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/common"
	"github.com/polyforma/qualitrack/internal/shared/logger"
	"github.com/polyforma/qualitrack/internal/shared/utils"
)

type Handler struct {
	submitUC usecases.SubmitQualityControlExecutor
	getUC    usecases.GetQualityControlExecutor
	listUC   usecases.ListQualityControlsExecutor
	logger   logger.Interface
}

func NewHandler(
	submitUC usecases.SubmitQualityControlExecutor,
	getUC usecases.GetQualityControlExecutor,
	listUC usecases.ListQualityControlsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		submitUC: submitUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Submit handles POST /quality-controls
// @Summary Submit the inspection of a lot
// @Description Computes the waste percentage and raises an alert above the product threshold. A lot takes one inspection.
// @Tags Quality
// @Accept json
// @Produce json
// @Param request body SubmitQualityControlRequest true "Inspection"
// @Success 201 {object} utils.APIResponse{data=dto.SubmitResultDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /quality-controls [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitQualityControlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit quality control", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.submitUC.Execute(c.Request.Context(), req.ToCommand(common.ActorFrom(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Quality control submitted successfully")
}

// Get handles GET /quality-controls/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetQualityControlQuery{
		Actor:            common.ActorFrom(c),
		QualityControlID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetByProductionRecord handles GET /production-records/:id/quality-control
func (h *Handler) GetByProductionRecord(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetQualityControlQuery{
		Actor:              common.ActorFrom(c),
		ProductionRecordID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /quality-controls
func (h *Handler) List(c *gin.Context) {
	dateFrom, err := common.OptionalDateQuery(c, "date_from")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	dateTo, err := common.OptionalDateQuery(c, "date_to")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	approved, err := common.OptionalBoolQuery(c, "approved")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	params := common.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListQualityControlsQuery{
		Actor:              common.ActorFrom(c),
		ProductionRecordID: utils.ParseOptionalUint(c, "production_record_id"),
		ProductID:          utils.ParseOptionalUint(c, "product_id"),
		LotNumber:          c.Query("lot_number"),
		Shift:              common.OptionalStringQuery(c, "shift"),
		Approved:           approved,
		DateFrom:           dateFrom,
		DateTo:             dateTo,
		Page:               params.Page,
		PageSize:           params.PageSize,
		SortBy:             params.SortBy,
		SortOrder:          params.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.QualityControls, result.TotalCount, result.Page, result.PageSize)
}
