package usecases

import (
	"context"
	"io"

	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/domain/notification"
)

// DocumentRenderer turns certificate facts into a stored document.
type DocumentRenderer interface {
	// Render returns the storage reference of the new document.
	Render(ctx context.Context, facts certificate.DocumentFacts) (string, error)
	Remove(ctx context.Context, ref string) error
}

type DocumentReader interface {
	// Open returns certificate.ErrDocumentMissing when ref is not in storage.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
}

type CodeGenerator interface {
	NewCode() (string, error)
}

// CertificateNotifier queues the requester's "certificate ready" message.
type CertificateNotifier interface {
	CertificateApproved(requesterID uint, summary notification.CertificateSummary) bool
}
