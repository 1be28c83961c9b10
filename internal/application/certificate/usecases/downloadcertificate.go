package usecases

import (
	"context"
	stderrors "errors"
	"io"

	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/errors"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type DownloadCertificateQuery struct {
	Actor         auth.Actor
	CertificateID uint
}

// DownloadCertificateResult owns Content; the caller must close it.
type DownloadCertificateResult struct {
	FileName    string
	ContentType string
	Content     io.ReadCloser
}

type DownloadCertificateUseCase struct {
	certRepo certificate.Repository
	reader   DocumentReader
	logger   logger.Interface
}

func NewDownloadCertificateUseCase(certRepo certificate.Repository, reader DocumentReader, logger logger.Interface) *DownloadCertificateUseCase {
	return &DownloadCertificateUseCase{certRepo: certRepo, reader: reader, logger: logger}
}

func (uc *DownloadCertificateUseCase) Execute(ctx context.Context, query DownloadCertificateQuery) (*DownloadCertificateResult, error) {
	if err := auth.Require(query.Actor); err != nil {
		return nil, err
	}

	cert, err := loadCertificate(ctx, uc.certRepo, uc.logger, query.CertificateID)
	if err != nil {
		return nil, err
	}

	ref, err := cert.DownloadableRef()
	if err != nil {
		return nil, mapDownloadError(err)
	}

	content, err := uc.reader.Open(ctx, ref)
	if err != nil {
		if stderrors.Is(err, certificate.ErrDocumentMissing) {
			uc.logger.Warnw("certificate document missing from storage", "certificate_id", cert.ID(), "document_ref", ref)
			return nil, mapDownloadError(err)
		}
		uc.logger.Errorw("failed to open certificate document", "certificate_id", cert.ID(), "error", err)
		return nil, errors.NewInternalError("failed to open certificate document")
	}

	uc.logger.Infow("certificate document downloaded", "certificate_id", cert.ID(), "user_id", query.Actor.UserID)
	return &DownloadCertificateResult{
		FileName:    cert.Code() + ".pdf",
		ContentType: constants.ContentTypePDF,
		Content:     content,
	}, nil
}

func mapDownloadError(err error) error {
	switch {
	case stderrors.Is(err, certificate.ErrNotApproved):
		return errors.NewValidationError("certificate is not approved")
	case stderrors.Is(err, certificate.ErrDocumentMissing):
		return errors.NewNotFoundError("certificate document not found")
	default:
		return errors.NewInternalError("failed to resolve certificate document")
	}
}
