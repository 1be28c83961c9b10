package usecases

import (
	"context"

	"github.com/polyforma/qualitrack/internal/application/certificate/dto"
)

type CreateCertificateExecutor interface {
	Execute(ctx context.Context, cmd CreateCertificateCommand) (*dto.CertificateDTO, error)
}

type ApproveCertificateExecutor interface {
	Execute(ctx context.Context, cmd ApproveCertificateCommand) (*dto.ApproveResultDTO, error)
}

type RejectCertificateExecutor interface {
	Execute(ctx context.Context, cmd RejectCertificateCommand) (*dto.CertificateDTO, error)
}

type GetCertificateExecutor interface {
	Execute(ctx context.Context, query GetCertificateQuery) (*dto.CertificateDTO, error)
}

type ListCertificatesExecutor interface {
	Execute(ctx context.Context, query ListCertificatesQuery) (*ListCertificatesResult, error)
}

type DownloadCertificateExecutor interface {
	Execute(ctx context.Context, query DownloadCertificateQuery) (*DownloadCertificateResult, error)
}
