package production

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polyforma/qualitrack/internal/application/production/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/common"
	"github.com/polyforma/qualitrack/internal/shared/logger"
	"github.com/polyforma/qualitrack/internal/shared/utils"
)

type Handler struct {
	createUC usecases.CreateProductionRecordExecutor
	getUC    usecases.GetProductionRecordExecutor
	listUC   usecases.ListProductionRecordsExecutor
	logger   logger.Interface
}

func NewHandler(
	createUC usecases.CreateProductionRecordExecutor,
	getUC usecases.GetProductionRecordExecutor,
	listUC usecases.ListProductionRecordsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		logger:   logger,
	}
}

// Create handles POST /production-records
// @Summary Create production record
// @Tags Production
// @Accept json
// @Produce json
// @Param request body CreateProductionRecordRequest true "Production run"
// @Success 201 {object} utils.APIResponse{data=dto.ProductionRecordDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /production-records [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateProductionRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create production record", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd, err := req.ToCommand(common.ActorFrom(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Production record created successfully")
}

// Get handles GET /production-records/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetProductionRecordQuery{
		Actor:              common.ActorFrom(c),
		ProductionRecordID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /production-records
// @Summary List production records
// @Tags Production
// @Produce json
// @Param product_id query int false "Product"
// @Param lot_number query string false "Lot number substring"
// @Param date_from query string false "From date (YYYY-MM-DD)"
// @Param date_to query string false "To date (YYYY-MM-DD)"
// @Param shift query string false "morning, afternoon or night"
// @Param has_inspection query bool false "Only lots with (true) or without (false) an inspection"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse{data=utils.ListResponse}
// @Router /production-records [get]
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
	hasInspection, err := common.OptionalBoolQuery(c, "has_inspection")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	params := common.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListProductionRecordsQuery{
		Actor:         common.ActorFrom(c),
		ProductID:     utils.ParseOptionalUint(c, "product_id"),
		LotNumber:     c.Query("lot_number"),
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		Shift:         common.OptionalStringQuery(c, "shift"),
		HasInspection: hasInspection,
		Page:          params.Page,
		PageSize:      params.PageSize,
		SortBy:        params.SortBy,
		SortOrder:     params.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Records, result.TotalCount, result.Page, result.PageSize)
}
