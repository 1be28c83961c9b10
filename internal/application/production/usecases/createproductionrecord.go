package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/polyforma/qualitrack/internal/application/production/dto"
	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type CreateProductionRecordCommand struct {
	Actor          auth.Actor
	ProductID      uint
	LotNumber      string
	ProductionDate time.Time
	Shift          string
	ProductionLine string
	TotalProduced  int
	TotalApproved  int
	TotalRejected  int
}

type CreateProductionRecordUseCase struct {
	recordRepo production.Repository
	catalog    catalog.Reader
	logger     logger.Interface
}

func NewCreateProductionRecordUseCase(
	recordRepo production.Repository,
	catalog catalog.Reader,
	logger logger.Interface,
) *CreateProductionRecordUseCase {
	return &CreateProductionRecordUseCase{
		recordRepo: recordRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

func (uc *CreateProductionRecordUseCase) Execute(ctx context.Context, cmd CreateProductionRecordCommand) (*dto.ProductionRecordDTO, error) {
	uc.logger.Infow("executing create production record use case",
		"product_id", cmd.ProductID,
		"lot_number", cmd.LotNumber,
		"operator_id", cmd.Actor.UserID,
	)

	if err := auth.Require(cmd.Actor); err != nil {
		return nil, err
	}

	shift, err := production.NewShift(cmd.Shift)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := production.ValidateTotals(cmd.TotalProduced, cmd.TotalApproved, cmd.TotalRejected); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	record, err := production.NewProductionRecord(
		cmd.ProductID,
		cmd.Actor.UserID,
		cmd.LotNumber,
		cmd.ProductionDate,
		shift,
		cmd.ProductionLine,
		cmd.TotalProduced,
		cmd.TotalApproved,
		cmd.TotalRejected,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if _, err := uc.catalog.GetProduct(ctx, cmd.ProductID); err != nil {
		if stderrors.Is(err, catalog.ErrProductNotFound) {
			return nil, errors.NewNotFoundError("product not found")
		}
		uc.logger.Errorw("failed to look up product", "product_id", cmd.ProductID, "error", err)
		return nil, errors.NewInternalError("failed to look up product")
	}

	if err := uc.recordRepo.Create(ctx, record); err != nil {
		uc.logger.Errorw("failed to save production record", "error", err)
		return nil, errors.NewInternalError("failed to save production record")
	}

	uc.logger.Infow("production record created", "production_record_id", record.ID(), "lot_number", record.LotNumber())
	return dto.ToProductionRecordDTO(record), nil
}
