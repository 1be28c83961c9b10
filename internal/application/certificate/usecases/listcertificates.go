package usecases

import (
	"context"

	"github.com/polyforma/qualitrack/internal/application/certificate/dto"
	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type ListCertificatesQuery struct {
	Actor              auth.Actor
	Status             *string
	ProductID          *uint
	ProductionRecordID *uint
	RequestedBy        *uint
	Page               int
	PageSize           int
	SortBy             string
	SortOrder          string
}

type ListCertificatesResult struct {
	Certificates []*dto.CertificateDTO
	TotalCount   int64
	Page         int
	PageSize     int
}

type ListCertificatesUseCase struct {
	certRepo certificate.Repository
	logger   logger.Interface
}

func NewListCertificatesUseCase(certRepo certificate.Repository, logger logger.Interface) *ListCertificatesUseCase {
	return &ListCertificatesUseCase{certRepo: certRepo, logger: logger}
}

func (uc *ListCertificatesUseCase) Execute(ctx context.Context, query ListCertificatesQuery) (*ListCertificatesResult, error) {
	if err := auth.Require(query.Actor); err != nil {
		return nil, err
	}

	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}
	if query.PageSize < 1 {
		query.PageSize = constants.DefaultPageSize
	}
	if query.PageSize > constants.MaxPageSize {
		query.PageSize = constants.MaxPageSize
	}

	filter := certificate.Filter{
		ProductID:          query.ProductID,
		ProductionRecordID: query.ProductionRecordID,
		RequestedBy:        query.RequestedBy,
	}
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	filter.SortBy = query.SortBy
	filter.SortOrder = query.SortOrder

	if query.Status != nil && *query.Status != "" {
		status, err := certificate.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	certs, total, err := uc.certRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list certificates", "error", err)
		return nil, errors.NewInternalError("failed to list certificates")
	}

	return &ListCertificatesResult{
		Certificates: dto.ToCertificateDTOList(certs),
		TotalCount:   total,
		Page:         query.Page,
		PageSize:     query.PageSize,
	}, nil
}
