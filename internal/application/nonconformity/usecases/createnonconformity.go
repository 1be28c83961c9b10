package usecases

import (
	"context"
	stderrors "errors"

	"github.com/polyforma/qualitrack/internal/application/nonconformity/dto"
	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/id"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type CodeGenerator interface {
	NewCode() (string, error)
}

type CreateNonConformityCommand struct {
	Actor              auth.Actor
	Description        string
	Severity           string
	ProductID          *uint
	ProductionRecordID *uint
}

type CreateNonConformityUseCase struct {
	ncRepo       nonconformity.Repository
	recordRepo   production.Repository
	catalog      catalog.Reader
	codes        CodeGenerator
	codeAttempts int
	logger       logger.Interface
}

func NewCreateNonConformityUseCase(
	ncRepo nonconformity.Repository,
	recordRepo production.Repository,
	catalog catalog.Reader,
	codes CodeGenerator,
	codeAttempts int,
	logger logger.Interface,
) *CreateNonConformityUseCase {
	return &CreateNonConformityUseCase{
		ncRepo:       ncRepo,
		recordRepo:   recordRepo,
		catalog:      catalog,
		codes:        codes,
		codeAttempts: codeAttempts,
		logger:       logger,
	}
}

func (uc *CreateNonConformityUseCase) Execute(ctx context.Context, cmd CreateNonConformityCommand) (*dto.NonConformityDTO, error) {
	uc.logger.Infow("executing create non-conformity use case",
		"severity", cmd.Severity,
		"reported_by", cmd.Actor.UserID,
	)

	if err := auth.Require(cmd.Actor); err != nil {
		return nil, err
	}

	severity, err := nonconformity.NewSeverity(cmd.Severity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	code, err := uc.codes.NewCode()
	if err != nil {
		uc.logger.Errorw("failed to generate non-conformity code", "error", err)
		return nil, errors.NewInternalError("failed to generate non-conformity code")
	}
	nc, err := nonconformity.NewNonConformity(code, cmd.Description, severity, cmd.ProductID, cmd.ProductionRecordID, cmd.Actor.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.checkReferences(ctx, cmd); err != nil {
		return nil, err
	}

	err = id.CreateWithUniqueCode(ctx, uc.codeAttempts, uc.codes.NewCode,
		func(ctx context.Context, code string) error {
			if err := nc.RegenerateCode(code); err != nil {
				return err
			}
			return uc.ncRepo.Create(ctx, nc)
		},
		func(err error) bool { return stderrors.Is(err, nonconformity.ErrCodeTaken) },
	)
	if err != nil {
		if stderrors.Is(err, nonconformity.ErrCodeTaken) {
			uc.logger.Errorw("non-conformity code space exhausted", "attempts", uc.codeAttempts)
			return nil, errors.NewConflictError("could not allocate a unique non-conformity code")
		}
		uc.logger.Errorw("failed to create non-conformity", "error", err)
		return nil, errors.NewInternalError("failed to create non-conformity")
	}

	uc.logger.Infow("non-conformity reported", "non_conformity_id", nc.ID(), "code", nc.Code(), "severity", nc.Severity())
	return dto.ToNonConformityDTO(nc), nil
}

// checkReferences verifies optional links and that a linked lot belongs to
// the linked product.
func (uc *CreateNonConformityUseCase) checkReferences(ctx context.Context, cmd CreateNonConformityCommand) error {
	if cmd.ProductID != nil {
		if _, err := uc.catalog.GetProduct(ctx, *cmd.ProductID); err != nil {
			if stderrors.Is(err, catalog.ErrProductNotFound) {
				return errors.NewNotFoundError("product not found")
			}
			uc.logger.Errorw("failed to look up product", "product_id", *cmd.ProductID, "error", err)
			return errors.NewInternalError("failed to look up product")
		}
	}

	if cmd.ProductionRecordID != nil {
		record, err := uc.recordRepo.GetByID(ctx, *cmd.ProductionRecordID)
		if err != nil {
			if stderrors.Is(err, production.ErrRecordNotFound) {
				return errors.NewNotFoundError("production record not found")
			}
			uc.logger.Errorw("failed to get production record", "production_record_id", *cmd.ProductionRecordID, "error", err)
			return errors.NewInternalError("failed to get production record")
		}
		if cmd.ProductID != nil && record.ProductID() != *cmd.ProductID {
			return errors.NewValidationError("product mismatch")
		}
	}
	return nil
}
