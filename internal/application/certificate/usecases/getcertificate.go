package usecases

import (
	"context"
	stderrors "errors"

	"github.com/polyforma/qualitrack/internal/application/certificate/dto"
	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type GetCertificateQuery struct {
	Actor         auth.Actor
	CertificateID uint
}

type GetCertificateUseCase struct {
	certRepo certificate.Repository
	logger   logger.Interface
}

func NewGetCertificateUseCase(certRepo certificate.Repository, logger logger.Interface) *GetCertificateUseCase {
	return &GetCertificateUseCase{certRepo: certRepo, logger: logger}
}

func (uc *GetCertificateUseCase) Execute(ctx context.Context, query GetCertificateQuery) (*dto.CertificateDTO, error) {
	if err := auth.Require(query.Actor); err != nil {
		return nil, err
	}
	cert, err := loadCertificate(ctx, uc.certRepo, uc.logger, query.CertificateID)
	if err != nil {
		return nil, err
	}
	return dto.ToCertificateDTO(cert), nil
}

func loadCertificate(ctx context.Context, repo certificate.Repository, log logger.Interface, certID uint) (*certificate.Certificate, error) {
	if certID == 0 {
		return nil, errors.NewValidationError("certificate ID is required")
	}
	cert, err := repo.GetByID(ctx, certID)
	if err != nil {
		if stderrors.Is(err, certificate.ErrCertificateNotFound) {
			return nil, errors.NewNotFoundError("certificate not found")
		}
		log.Errorw("failed to get certificate", "certificate_id", certID, "error", err)
		return nil, errors.NewInternalError("failed to get certificate")
	}
	return cert, nil
}
