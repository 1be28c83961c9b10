package usecases

import (
	"context"
	"time"

	"github.com/polyforma/qualitrack/internal/application/production/dto"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type ListProductionRecordsQuery struct {
	Actor         auth.Actor
	ProductID     *uint
	LotNumber     string
	DateFrom      *time.Time
	DateTo        *time.Time
	Shift         *string
	HasInspection *bool
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

type ListProductionRecordsResult struct {
	Records    []*dto.ProductionRecordDTO
	TotalCount int64
	Page       int
	PageSize   int
}

type ListProductionRecordsUseCase struct {
	recordRepo production.Repository
	logger     logger.Interface
}

func NewListProductionRecordsUseCase(recordRepo production.Repository, logger logger.Interface) *ListProductionRecordsUseCase {
	return &ListProductionRecordsUseCase{recordRepo: recordRepo, logger: logger}
}

func (uc *ListProductionRecordsUseCase) Execute(ctx context.Context, query ListProductionRecordsQuery) (*ListProductionRecordsResult, error) {
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
	if query.DateFrom != nil && query.DateTo != nil && query.DateTo.Before(*query.DateFrom) {
		return nil, errors.NewValidationError("date_to must not be before date_from")
	}

	filter := production.Filter{
		ProductID:     query.ProductID,
		LotNumber:     query.LotNumber,
		DateFrom:      query.DateFrom,
		DateTo:        query.DateTo,
		HasInspection: query.HasInspection,
	}
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	filter.SortBy = query.SortBy
	filter.SortOrder = query.SortOrder

	if query.Shift != nil && *query.Shift != "" {
		shift, err := production.NewShift(*query.Shift)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Shift = &shift
	}

	records, total, err := uc.recordRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list production records", "error", err)
		return nil, errors.NewInternalError("failed to list production records")
	}

	return &ListProductionRecordsResult{
		Records:    dto.ToProductionRecordDTOList(records),
		TotalCount: total,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}, nil
}
