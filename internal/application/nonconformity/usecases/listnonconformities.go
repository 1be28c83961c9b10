package usecases

import (
	"context"

	"github.com/polyforma/qualitrack/internal/application/nonconformity/dto"
	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type ListNonConformitiesQuery struct {
	Actor              auth.Actor
	Status             *string
	Severity           *string
	ProductID          *uint
	ProductionRecordID *uint
	ReportedBy         *uint
	Page               int
	PageSize           int
	SortBy             string
	SortOrder          string
}

type ListNonConformitiesResult struct {
	NonConformities []*dto.NonConformityDTO
	TotalCount      int64
	Page            int
	PageSize        int
}

type ListNonConformitiesUseCase struct {
	ncRepo nonconformity.Repository
	logger logger.Interface
}

func NewListNonConformitiesUseCase(ncRepo nonconformity.Repository, logger logger.Interface) *ListNonConformitiesUseCase {
	return &ListNonConformitiesUseCase{ncRepo: ncRepo, logger: logger}
}

func (uc *ListNonConformitiesUseCase) Execute(ctx context.Context, query ListNonConformitiesQuery) (*ListNonConformitiesResult, error) {
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

	filter := nonconformity.Filter{
		ProductID:          query.ProductID,
		ProductionRecordID: query.ProductionRecordID,
		ReportedBy:         query.ReportedBy,
	}
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	filter.SortBy = query.SortBy
	filter.SortOrder = query.SortOrder

	if query.Status != nil && *query.Status != "" {
		status, err := nonconformity.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Severity != nil && *query.Severity != "" {
		severity, err := nonconformity.NewSeverity(*query.Severity)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Severity = &severity
	}

	items, total, err := uc.ncRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list non-conformities", "error", err)
		return nil, errors.NewInternalError("failed to list non-conformities")
	}

	return &ListNonConformitiesResult{
		NonConformities: dto.ToNonConformityDTOList(items),
		TotalCount:      total,
		Page:            query.Page,
		PageSize:        query.PageSize,
	}, nil
}
