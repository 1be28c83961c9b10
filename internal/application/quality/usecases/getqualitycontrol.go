package usecases

import (
	"context"
	stderrors "errors"

	"github.com/polyforma/qualitrack/internal/application/quality/dto"
	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

// GetQualityControlQuery looks a control up by its own ID, or by its lot
// when QualityControlID is zero.
type GetQualityControlQuery struct {
	Actor              auth.Actor
	QualityControlID   uint
	ProductionRecordID uint
}

type GetQualityControlUseCase struct {
	qualityRepo quality.Repository
	logger      logger.Interface
}

func NewGetQualityControlUseCase(qualityRepo quality.Repository, logger logger.Interface) *GetQualityControlUseCase {
	return &GetQualityControlUseCase{qualityRepo: qualityRepo, logger: logger}
}

func (uc *GetQualityControlUseCase) Execute(ctx context.Context, query GetQualityControlQuery) (*dto.QualityControlDTO, error) {
	if err := auth.Require(query.Actor); err != nil {
		return nil, err
	}

	var (
		qc  *quality.QualityControl
		err error
	)
	switch {
	case query.QualityControlID != 0:
		qc, err = uc.qualityRepo.GetByID(ctx, query.QualityControlID)
	case query.ProductionRecordID != 0:
		qc, err = uc.qualityRepo.GetByProductionRecordID(ctx, query.ProductionRecordID)
	default:
		return nil, errors.NewValidationError("quality control ID or production record ID is required")
	}
	if err != nil {
		if stderrors.Is(err, quality.ErrControlNotFound) {
			return nil, errors.NewNotFoundError("quality control not found")
		}
		uc.logger.Errorw("failed to get quality control",
			"quality_control_id", query.QualityControlID,
			"production_record_id", query.ProductionRecordID,
			"error", err,
		)
		return nil, errors.NewInternalError("failed to get quality control")
	}
	return dto.ToQualityControlDTO(qc), nil
}
