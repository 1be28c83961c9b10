package usecases

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/polyforma/qualitrack/internal/application/certificate/dto"
	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/biztime"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type RejectCertificateCommand struct {
	Actor         auth.Actor
	CertificateID uint
	Reason        string
}

type RejectCertificateUseCase struct {
	certRepo certificate.Repository
	logger   logger.Interface
}

func NewRejectCertificateUseCase(certRepo certificate.Repository, logger logger.Interface) *RejectCertificateUseCase {
	return &RejectCertificateUseCase{certRepo: certRepo, logger: logger}
}

func (uc *RejectCertificateUseCase) Execute(ctx context.Context, cmd RejectCertificateCommand) (*dto.CertificateDTO, error) {
	uc.logger.Infow("executing reject certificate use case", "certificate_id", cmd.CertificateID, "approver_id", cmd.Actor.UserID)

	if err := auth.Require(cmd.Actor, auth.Approvers...); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cmd.Reason) == "" {
		return nil, errors.NewValidationError("rejection reason is required")
	}

	cert, err := loadCertificate(ctx, uc.certRepo, uc.logger, cmd.CertificateID)
	if err != nil {
		return nil, err
	}

	if err := cert.Reject(cmd.Actor.UserID, cmd.Reason, biztime.NowUTC()); err != nil {
		if stderrors.Is(err, certificate.ErrNotPending) {
			return nil, errors.NewConflictError("certificate is not pending", cert.Status().String())
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.certRepo.SaveDecision(ctx, cert); err != nil {
		if stderrors.Is(err, certificate.ErrNotPending) {
			uc.logger.Warnw("certificate decided concurrently", "certificate_id", cert.ID())
			return nil, errors.NewConflictError("certificate is not pending")
		}
		uc.logger.Errorw("failed to save certificate rejection", "certificate_id", cert.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save certificate rejection")
	}

	uc.logger.Infow("certificate rejected", "certificate_id", cert.ID(), "code", cert.Code())
	return dto.ToCertificateDTO(cert), nil
}
