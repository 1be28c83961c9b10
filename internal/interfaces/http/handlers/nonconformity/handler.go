package nonconformity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polyforma/qualitrack/internal/application/nonconformity/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/common"
	"github.com/polyforma/qualitrack/internal/shared/logger"
	"github.com/polyforma/qualitrack/internal/shared/utils"
)

type CreateNonConformityRequest struct {
	Description        string `json:"description" binding:"max=5000"`
	Severity           string `json:"severity" binding:"required,oneof=baja media alta critica"`
	ProductID          *uint  `json:"product_id"`
	ProductionRecordID *uint  `json:"production_record_id"`
}

type ResolveNonConformityRequest struct {
	CorrectiveAction string `json:"corrective_action" binding:"max=5000"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=abierta en_revision resuelta cerrada"`
}

type Handler struct {
	createUC    usecases.CreateNonConformityExecutor
	getUC       usecases.GetNonConformityExecutor
	listUC      usecases.ListNonConformitiesExecutor
	resolveUC   usecases.ResolveNonConformityExecutor
	setStatusUC usecases.SetNonConformityStatusExecutor
	logger      logger.Interface
}

func NewHandler(
	createUC usecases.CreateNonConformityExecutor,
	getUC usecases.GetNonConformityExecutor,
	listUC usecases.ListNonConformitiesExecutor,
	resolveUC usecases.ResolveNonConformityExecutor,
	setStatusUC usecases.SetNonConformityStatusExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:    createUC,
		getUC:       getUC,
		listUC:      listUC,
		resolveUC:   resolveUC,
		setStatusUC: setStatusUC,
		logger:      logger,
	}
}

// Create handles POST /non-conformities
func (h *Handler) Create(c *gin.Context) {
	var req CreateNonConformityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create non-conformity", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateNonConformityCommand{
		Actor:              common.ActorFrom(c),
		Description:        req.Description,
		Severity:           req.Severity,
		ProductID:          req.ProductID,
		ProductionRecordID: req.ProductionRecordID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Non-conformity reported successfully")
}

// Get handles GET /non-conformities/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetNonConformityQuery{
		Actor:           common.ActorFrom(c),
		NonConformityID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /non-conformities
func (h *Handler) List(c *gin.Context) {
	params := common.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNonConformitiesQuery{
		Actor:              common.ActorFrom(c),
		Status:             common.OptionalStringQuery(c, "status"),
		Severity:           common.OptionalStringQuery(c, "severity"),
		ProductID:          utils.ParseOptionalUint(c, "product_id"),
		ProductionRecordID: utils.ParseOptionalUint(c, "production_record_id"),
		ReportedBy:         utils.ParseOptionalUint(c, "reported_by"),
		Page:               params.Page,
		PageSize:           params.PageSize,
		SortBy:             params.SortBy,
		SortOrder:          params.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.NonConformities, result.TotalCount, result.Page, result.PageSize)
}

// Resolve handles POST /non-conformities/:id/resolve
func (h *Handler) Resolve(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveNonConformityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolveNonConformityCommand{
		Actor:            common.ActorFrom(c),
		NonConformityID:  id,
		CorrectiveAction: req.CorrectiveAction,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Non-conformity resolved", result)
}

// SetStatus handles PATCH /non-conformities/:id/status
func (h *Handler) SetStatus(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.setStatusUC.Execute(c.Request.Context(), usecases.SetNonConformityStatusCommand{
		Actor:           common.ActorFrom(c),
		NonConformityID: id,
		Status:          req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Non-conformity status updated", result)
}
