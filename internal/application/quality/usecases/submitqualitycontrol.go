package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/application/quality/dto"
	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

const msgAlreadyInspected = "production record already has a quality control (one inspection per lot)"

// TransactionRunner is satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// AlertEvaluator is satisfied by services.AlertTrigger.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, product *catalog.Product, record *production.ProductionRecord, qc *quality.QualityControl) (*alert.Alert, error)
	Notify(a *alert.Alert, productName string, record *production.ProductionRecord) bool
}

type DefectInput struct {
	DefectType  string
	Quantity    int
	Description string
}

type SubmitQualityControlCommand struct {
	Actor              auth.Actor
	ProductionRecordID uint
	Weight             *decimal.Decimal
	Diameter           *decimal.Decimal
	Height             *decimal.Decimal
	Width              *decimal.Decimal
	ExtraMeasurements  map[string]any
	// Approved overrides the verdict derived from the record's totals.
	Approved *bool
	Notes    string
	Defects  []DefectInput
}

type SubmitQualityControlUseCase struct {
	recordRepo  production.Repository
	qualityRepo quality.Repository
	catalog     catalog.Reader
	trigger     AlertEvaluator
	txManager   TransactionRunner
	logger      logger.Interface
}

func NewSubmitQualityControlUseCase(
	recordRepo production.Repository,
	qualityRepo quality.Repository,
	catalog catalog.Reader,
	trigger AlertEvaluator,
	txManager TransactionRunner,
	logger logger.Interface,
) *SubmitQualityControlUseCase {
	return &SubmitQualityControlUseCase{
		recordRepo:  recordRepo,
		qualityRepo: qualityRepo,
		catalog:     catalog,
		trigger:     trigger,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *SubmitQualityControlUseCase) Execute(ctx context.Context, cmd SubmitQualityControlCommand) (*dto.SubmitResultDTO, error) {
	uc.logger.Infow("executing submit quality control use case",
		"production_record_id", cmd.ProductionRecordID,
		"inspector_id", cmd.Actor.UserID,
		"defect_rows", len(cmd.Defects),
	)

	if err := auth.Require(cmd.Actor, auth.QualityEditors...); err != nil {
		return nil, err
	}
	if cmd.ProductionRecordID == 0 {
		return nil, errors.NewValidationError("production record ID is required")
	}

	defects, err := buildDefects(cmd.Defects)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	record, err := uc.recordRepo.GetByID(ctx, cmd.ProductionRecordID)
	if err != nil {
		if stderrors.Is(err, production.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("production record not found")
		}
		uc.logger.Errorw("failed to get production record", "production_record_id", cmd.ProductionRecordID, "error", err)
		return nil, errors.NewInternalError("failed to get production record")
	}

	// The unique index is authoritative; this only spares the writes.
	exists, err := uc.qualityRepo.ExistsForProductionRecord(ctx, record.ID())
	if err != nil {
		uc.logger.Errorw("failed to check existing inspection", "production_record_id", record.ID(), "error", err)
		return nil, errors.NewInternalError("failed to check existing inspection")
	}
	if exists {
		return nil, errors.NewConflictError(msgAlreadyInspected)
	}

	product, err := uc.loadProduct(ctx, record.ProductID())
	if err != nil {
		return nil, err
	}

	approved := record.DefaultApproval()
	if cmd.Approved != nil {
		approved = *cmd.Approved
	}

	qc, err := quality.NewQualityControl(
		record.ID(),
		cmd.Actor.UserID,
		record.TotalProduced(),
		quality.Measurements{
			Weight:   cmd.Weight,
			Diameter: cmd.Diameter,
			Height:   cmd.Height,
			Width:    cmd.Width,
			Extra:    cmd.ExtraMeasurements,
		},
		approved,
		cmd.Notes,
		defects,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var raised *alert.Alert
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.qualityRepo.Create(txCtx, qc); err != nil {
			return err
		}
		a, err := uc.trigger.Evaluate(txCtx, product, record, qc)
		if err != nil {
			return err
		}
		raised = a
		return nil
	})
	if err != nil {
		if stderrors.Is(err, quality.ErrAlreadyInspected) {
			uc.logger.Warnw("concurrent inspection rejected by storage", "production_record_id", record.ID())
			return nil, errors.NewConflictError(msgAlreadyInspected)
		}
		uc.logger.Errorw("failed to save quality control", "production_record_id", record.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save quality control")
	}

	result := &dto.SubmitResultDTO{QualityControl: dto.ToQualityControlDTO(qc)}
	if raised != nil {
		alertID := raised.ID()
		result.AlertRaised = true
		result.AlertID = &alertID
		result.NotificationQueued = uc.trigger.Notify(raised, product.Name, record)
	}

	uc.logger.Infow("quality control submitted",
		"quality_control_id", qc.ID(),
		"production_record_id", record.ID(),
		"waste_percentage", qc.WastePercentage().StringFixed(2),
		"alert_raised", result.AlertRaised,
	)
	return result, nil
}

// loadProduct falls back to a bare product, and so the default threshold,
// when the catalog no longer knows the record's product.
func (uc *SubmitQualityControlUseCase) loadProduct(ctx context.Context, productID uint) (*catalog.Product, error) {
	product, err := uc.catalog.GetProduct(ctx, productID)
	if err == nil {
		return product, nil
	}
	if stderrors.Is(err, catalog.ErrProductNotFound) {
		uc.logger.Warnw("product missing from catalog, using default threshold", "product_id", productID)
		return &catalog.Product{ID: productID}, nil
	}
	uc.logger.Errorw("failed to look up product", "product_id", productID, "error", err)
	return nil, errors.NewInternalError("failed to look up product")
}

func buildDefects(inputs []DefectInput) ([]*quality.Defect, error) {
	defects := make([]*quality.Defect, 0, len(inputs))
	for i, in := range inputs {
		dt, err := quality.NewDefectType(in.DefectType)
		if err != nil {
			return nil, fmt.Errorf("defects[%d]: %w", i, err)
		}
		d, err := quality.NewDefect(dt, in.Quantity, in.Description)
		if err != nil {
			return nil, fmt.Errorf("defects[%d]: %w", i, err)
		}
		defects = append(defects, d)
	}
	return defects, nil
}
