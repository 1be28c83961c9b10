package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

type pdfRenderer interface {
	RenderPDF(facts certificate.DocumentFacts) ([]byte, error)
}

// CertificateDocuments renders certificates and stores the result. It
// satisfies the certificate use cases' renderer and reader ports.
type CertificateDocuments struct {
	renderer pdfRenderer
	store    Store
	logger   logger.Interface
}

func NewCertificateDocuments(renderer pdfRenderer, store Store, logger logger.Interface) *CertificateDocuments {
	return &CertificateDocuments{
		renderer: renderer,
		store:    store,
		logger:   logger,
	}
}

func (d *CertificateDocuments) Render(ctx context.Context, facts certificate.DocumentFacts) (string, error) {
	content, err := d.renderer.RenderPDF(facts)
	if err != nil {
		return "", err
	}

	key := ObjectKey(facts.Code, facts.IssuedAt)
	if err := d.store.Put(ctx, key, bytes.NewReader(content), int64(len(content)), ContentTypePDF); err != nil {
		return "", fmt.Errorf("failed to store certificate document: %w", err)
	}

	d.logger.Infow("certificate document stored", "code", facts.Code, "ref", key, "bytes", len(content))
	return key, nil
}

func (d *CertificateDocuments) Remove(ctx context.Context, ref string) error {
	return d.store.Delete(ctx, ref)
}

func (d *CertificateDocuments) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	rc, err := d.store.Get(ctx, ref)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			return nil, certificate.ErrDocumentMissing
		}
		return nil, err
	}
	return rc, nil
}
