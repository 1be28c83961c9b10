package usecases

import (
	"context"
	stderrors "errors"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/application/certificate/dto"
	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/domain/directory"
	"github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/biztime"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type ApproveCertificateCommand struct {
	Actor         auth.Actor
	CertificateID uint
}

type ApproveCertificateUseCase struct {
	certRepo certificate.Repository
	facts    *factsLoader
	renderer DocumentRenderer
	notifier CertificateNotifier
	logger   logger.Interface
}

func NewApproveCertificateUseCase(
	certRepo certificate.Repository,
	recordRepo production.Repository,
	qualityRepo quality.Repository,
	catalog catalog.Reader,
	directory directory.Reader,
	renderer DocumentRenderer,
	notifier CertificateNotifier,
	defaultThreshold decimal.Decimal,
	logger logger.Interface,
) *ApproveCertificateUseCase {
	return &ApproveCertificateUseCase{
		certRepo: certRepo,
		facts: &factsLoader{
			recordRepo:       recordRepo,
			qualityRepo:      qualityRepo,
			catalog:          catalog,
			directory:        directory,
			defaultThreshold: defaultThreshold,
		},
		renderer: renderer,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *ApproveCertificateUseCase) Execute(ctx context.Context, cmd ApproveCertificateCommand) (*dto.ApproveResultDTO, error) {
	uc.logger.Infow("executing approve certificate use case", "certificate_id", cmd.CertificateID, "approver_id", cmd.Actor.UserID)

	if err := auth.Require(cmd.Actor, auth.Approvers...); err != nil {
		return nil, err
	}

	cert, err := loadCertificate(ctx, uc.certRepo, uc.logger, cmd.CertificateID)
	if err != nil {
		return nil, err
	}
	if err := cert.EnsurePending(); err != nil {
		return nil, errors.NewConflictError("certificate is not pending", cert.Status().String())
	}

	now := biztime.NowUTC()
	loaded, err := uc.facts.load(ctx, cert, cmd.Actor.UserID, now)
	if err != nil {
		uc.logger.Errorw("failed to gather certificate facts", "certificate_id", cert.ID(), "error", err)
		return nil, errors.NewInternalError("failed to gather certificate facts")
	}

	ref, err := uc.renderer.Render(ctx, loaded.facts)
	if err != nil {
		uc.logger.Errorw("failed to render certificate document", "certificate_id", cert.ID(), "error", err)
		return nil, errors.NewInternalError("failed to render certificate document")
	}

	if err := cert.Approve(cmd.Actor.UserID, ref, now); err != nil {
		uc.discardDocument(ctx, cert.ID(), ref)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.certRepo.SaveDecision(ctx, cert); err != nil {
		uc.discardDocument(ctx, cert.ID(), ref)
		if stderrors.Is(err, certificate.ErrNotPending) {
			uc.logger.Warnw("certificate decided concurrently", "certificate_id", cert.ID())
			return nil, errors.NewConflictError("certificate is not pending")
		}
		uc.logger.Errorw("failed to save certificate approval", "certificate_id", cert.ID(), "error", err)
		return nil, errors.NewInternalError("failed to save certificate approval")
	}

	result := &dto.ApproveResultDTO{Certificate: dto.ToCertificateDTO(cert)}
	if uc.notifier != nil {
		result.NotificationQueued = uc.notifier.CertificateApproved(cert.RequestedBy(), notification.CertificateSummary{
			CertificateID: cert.ID(),
			Code:          cert.Code(),
			ProductName:   loaded.product.Name,
			LotNumber:     loaded.record.LotNumber(),
			ApprovedAt:    now,
		})
	}

	uc.logger.Infow("certificate approved", "certificate_id", cert.ID(), "code", cert.Code(), "document_ref", ref)
	return result, nil
}

func (uc *ApproveCertificateUseCase) discardDocument(ctx context.Context, certID uint, ref string) {
	if err := uc.renderer.Remove(ctx, ref); err != nil {
		uc.logger.Warnw("failed to remove orphaned certificate document", "certificate_id", certID, "document_ref", ref, "error", err)
	}
}
