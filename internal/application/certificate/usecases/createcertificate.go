package usecases

import (
	"context"
	stderrors "errors"

	"github.com/polyforma/qualitrack/internal/application/certificate/dto"
	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/id"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type CreateCertificateCommand struct {
	Actor              auth.Actor
	ProductID          uint
	ProductionRecordID uint
	QualityControlID   *uint
}

type CreateCertificateUseCase struct {
	certRepo     certificate.Repository
	recordRepo   production.Repository
	qualityRepo  quality.Repository
	codes        CodeGenerator
	codeAttempts int
	logger       logger.Interface
}

func NewCreateCertificateUseCase(
	certRepo certificate.Repository,
	recordRepo production.Repository,
	qualityRepo quality.Repository,
	codes CodeGenerator,
	codeAttempts int,
	logger logger.Interface,
) *CreateCertificateUseCase {
	return &CreateCertificateUseCase{
		certRepo:     certRepo,
		recordRepo:   recordRepo,
		qualityRepo:  qualityRepo,
		codes:        codes,
		codeAttempts: codeAttempts,
		logger:       logger,
	}
}

func (uc *CreateCertificateUseCase) Execute(ctx context.Context, cmd CreateCertificateCommand) (*dto.CertificateDTO, error) {
	uc.logger.Infow("executing create certificate use case",
		"product_id", cmd.ProductID,
		"production_record_id", cmd.ProductionRecordID,
		"requested_by", cmd.Actor.UserID,
	)

	if err := auth.Require(cmd.Actor, auth.QualityEditors...); err != nil {
		return nil, err
	}
	if cmd.ProductID == 0 {
		return nil, errors.NewValidationError("product ID is required")
	}
	if cmd.ProductionRecordID == 0 {
		return nil, errors.NewValidationError("production record ID is required")
	}

	record, err := uc.recordRepo.GetByID(ctx, cmd.ProductionRecordID)
	if err != nil {
		if stderrors.Is(err, production.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("production record not found")
		}
		uc.logger.Errorw("failed to get production record", "production_record_id", cmd.ProductionRecordID, "error", err)
		return nil, errors.NewInternalError("failed to get production record")
	}

	if err := uc.checkEligibility(ctx, cmd, record); err != nil {
		return nil, err
	}

	var cert *certificate.Certificate
	err = id.CreateWithUniqueCode(ctx, uc.codeAttempts, uc.codes.NewCode,
		func(ctx context.Context, code string) error {
			c, err := certificate.NewCertificate(code, record.ProductID(), record.ID(), cmd.QualityControlID, cmd.Actor.UserID)
			if err != nil {
				return err
			}
			if err := uc.certRepo.Create(ctx, c); err != nil {
				return err
			}
			cert = c
			return nil
		},
		func(err error) bool { return stderrors.Is(err, certificate.ErrCodeTaken) },
	)
	if err != nil {
		if stderrors.Is(err, certificate.ErrCodeTaken) {
			uc.logger.Errorw("certificate code space exhausted", "attempts", uc.codeAttempts)
			return nil, errors.NewConflictError("could not allocate a unique certificate code")
		}
		uc.logger.Errorw("failed to create certificate", "production_record_id", record.ID(), "error", err)
		return nil, errors.NewInternalError("failed to create certificate")
	}

	uc.logger.Infow("certificate requested", "certificate_id", cert.ID(), "code", cert.Code())
	return dto.ToCertificateDTO(cert), nil
}

func (uc *CreateCertificateUseCase) checkEligibility(ctx context.Context, cmd CreateCertificateCommand, record *production.ProductionRecord) error {
	inspected, err := uc.qualityRepo.ExistsForProductionRecord(ctx, record.ID())
	if err != nil {
		uc.logger.Errorw("failed to check inspection", "production_record_id", record.ID(), "error", err)
		return errors.NewInternalError("failed to check inspection")
	}
	if !inspected {
		return errors.NewValidationError("lot has no inspection")
	}

	if cmd.QualityControlID != nil {
		qc, err := uc.qualityRepo.GetByID(ctx, *cmd.QualityControlID)
		if err != nil {
			if stderrors.Is(err, quality.ErrControlNotFound) {
				return errors.NewValidationError("inspection does not belong to this lot")
			}
			uc.logger.Errorw("failed to get quality control", "quality_control_id", *cmd.QualityControlID, "error", err)
			return errors.NewInternalError("failed to get quality control")
		}
		if qc.ProductionRecordID() != record.ID() {
			return errors.NewValidationError("inspection does not belong to this lot")
		}
	}

	if cmd.ProductID != record.ProductID() {
		return errors.NewValidationError("product mismatch")
	}
	return nil
}
