// Package document renders certificate PDFs and keeps them in object storage.
package document

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

const ContentTypePDF = "application/pdf"

var ErrObjectNotFound = errors.New("object not found")

// Store is a flat key/value blob store.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	// Get returns ErrObjectNotFound for unknown keys.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// ObjectKey places a certificate under its issue date. A random suffix keeps
// two renders of the same code apart.
func ObjectKey(code string, issuedAt time.Time) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, code)
	return fmt.Sprintf("certificates/%s/%s-%s.pdf", issuedAt.UTC().Format("2006/01/02"), safe, uuid.NewString()[:8])
}
