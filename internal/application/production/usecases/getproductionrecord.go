package usecases

import (
	"context"
	stderrors "errors"

	"github.com/polyforma/qualitrack/internal/application/production/dto"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type GetProductionRecordQuery struct {
	Actor              auth.Actor
	ProductionRecordID uint
}

type GetProductionRecordUseCase struct {
	recordRepo production.Repository
	logger     logger.Interface
}

func NewGetProductionRecordUseCase(recordRepo production.Repository, logger logger.Interface) *GetProductionRecordUseCase {
	return &GetProductionRecordUseCase{recordRepo: recordRepo, logger: logger}
}

func (uc *GetProductionRecordUseCase) Execute(ctx context.Context, query GetProductionRecordQuery) (*dto.ProductionRecordDTO, error) {
	if err := auth.Require(query.Actor); err != nil {
		return nil, err
	}

	record, err := uc.recordRepo.GetByID(ctx, query.ProductionRecordID)
	if err != nil {
		if stderrors.Is(err, production.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("production record not found")
		}
		uc.logger.Errorw("failed to get production record", "production_record_id", query.ProductionRecordID, "error", err)
		return nil, errors.NewInternalError("failed to get production record")
	}
	return dto.ToProductionRecordDTO(record), nil
}
