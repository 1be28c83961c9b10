package certificate

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polyforma/qualitrack/internal/application/certificate/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/common"
	"github.com/polyforma/qualitrack/internal/shared/logger"
	"github.com/polyforma/qualitrack/internal/shared/utils"
)

type Handler struct {
	createUC   usecases.CreateCertificateExecutor
	approveUC  usecases.ApproveCertificateExecutor
	rejectUC   usecases.RejectCertificateExecutor
	getUC      usecases.GetCertificateExecutor
	listUC     usecases.ListCertificatesExecutor
	downloadUC usecases.DownloadCertificateExecutor
	logger     logger.Interface
}

func NewHandler(
	createUC usecases.CreateCertificateExecutor,
	approveUC usecases.ApproveCertificateExecutor,
	rejectUC usecases.RejectCertificateExecutor,
	getUC usecases.GetCertificateExecutor,
	listUC usecases.ListCertificatesExecutor,
	downloadUC usecases.DownloadCertificateExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUC:   createUC,
		approveUC:  approveUC,
		rejectUC:   rejectUC,
		getUC:      getUC,
		listUC:     listUC,
		downloadUC: downloadUC,
		logger:     logger,
	}
}

// Create handles POST /certificates
// @Summary Request a quality certificate
// @Description The lot must already have an inspection. The certificate starts as pendiente.
// @Tags Certificates
// @Accept json
// @Produce json
// @Param request body CreateCertificateRequest true "Certificate request"
// @Success 201 {object} utils.APIResponse{data=dto.CertificateDTO}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /certificates [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create certificate", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCertificateCommand{
		Actor:              common.ActorFrom(c),
		ProductID:          req.ProductID,
		ProductionRecordID: req.ProductionRecordID,
		QualityControlID:   req.QualityControlID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Certificate requested successfully")
}

// Approve handles POST /certificates/:id/approve
// @Summary Approve a pending certificate
// @Description Renders and stores the certificate document, then marks it aprobado.
// @Tags Certificates
// @Produce json
// @Param id path int true "Certificate ID"
// @Success 200 {object} utils.APIResponse{data=dto.ApproveResultDTO}
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /certificates/{id}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.ApproveCertificateCommand{
		Actor:         common.ActorFrom(c),
		CertificateID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Certificate approved", result)
}

// Reject handles POST /certificates/:id/reject
func (h *Handler) Reject(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RejectCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.rejectUC.Execute(c.Request.Context(), usecases.RejectCertificateCommand{
		Actor:         common.ActorFrom(c),
		CertificateID: id,
		Reason:        req.Reason,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Certificate rejected", result)
}

// Get handles GET /certificates/:id
func (h *Handler) Get(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCertificateQuery{
		Actor:         common.ActorFrom(c),
		CertificateID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /certificates
func (h *Handler) List(c *gin.Context) {
	params := common.ParseListParams(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListCertificatesQuery{
		Actor:              common.ActorFrom(c),
		Status:             common.OptionalStringQuery(c, "status"),
		ProductID:          utils.ParseOptionalUint(c, "product_id"),
		ProductionRecordID: utils.ParseOptionalUint(c, "production_record_id"),
		RequestedBy:        utils.ParseOptionalUint(c, "requested_by"),
		Page:               params.Page,
		PageSize:           params.PageSize,
		SortBy:             params.SortBy,
		SortOrder:          params.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Certificates, result.TotalCount, result.Page, result.PageSize)
}

// Download handles GET /certificates/:id/download
// @Summary Download an approved certificate
// @Tags Certificates
// @Produce application/pdf
// @Param id path int true "Certificate ID"
// @Success 200 {file} file
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /certificates/{id}/download [get]
func (h *Handler) Download(c *gin.Context) {
	id, err := common.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadCertificateQuery{
		Actor:         common.ActorFrom(c),
		CertificateID: id,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Content.Close()

	c.DataFromReader(http.StatusOK, -1, result.ContentType, result.Content, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, result.FileName),
	})
}
