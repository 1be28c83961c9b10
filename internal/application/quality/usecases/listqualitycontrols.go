package usecases

import (
	"context"
	"time"

	"github.com/polyforma/qualitrack/internal/application/quality/dto"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type ListQualityControlsQuery struct {
	Actor              auth.Actor
	ProductionRecordID *uint
	ProductID          *uint
	LotNumber          string
	Shift              *string
	Approved           *bool
	DateFrom           *time.Time
	DateTo             *time.Time
	Page               int
	PageSize           int
	SortBy             string
	SortOrder          string
}

type ListQualityControlsResult struct {
	QualityControls []*dto.QualityControlDTO
	TotalCount      int64
	Page            int
	PageSize        int
}

type ListQualityControlsUseCase struct {
	qualityRepo quality.Repository
	logger      logger.Interface
}

func NewListQualityControlsUseCase(qualityRepo quality.Repository, logger logger.Interface) *ListQualityControlsUseCase {
	return &ListQualityControlsUseCase{qualityRepo: qualityRepo, logger: logger}
}

func (uc *ListQualityControlsUseCase) Execute(ctx context.Context, query ListQualityControlsQuery) (*ListQualityControlsResult, error) {
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

	filter := quality.Filter{
		ProductionRecordID: query.ProductionRecordID,
		ProductID:          query.ProductID,
		LotNumber:          query.LotNumber,
		Approved:           query.Approved,
		DateFrom:           query.DateFrom,
		DateTo:             query.DateTo,
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
		filter.Shift = shift.String()
	}

	controls, total, err := uc.qualityRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list quality controls", "error", err)
		return nil, errors.NewInternalError("failed to list quality controls")
	}

	return &ListQualityControlsResult{
		QualityControls: dto.ToQualityControlDTOList(controls),
		TotalCount:      total,
		Page:            query.Page,
		PageSize:        query.PageSize,
	}, nil
}
