package id

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// CodeGenerator produces codes for one entity type.
type CodeGenerator struct {
	prefix       string
	layout       string
	suffixLength int
	now          func() time.Time
}

func NewCertificateCodeGenerator(prefix string) *CodeGenerator {
	if prefix == "" {
		prefix = "CERT"
	}
	return &CodeGenerator{prefix: prefix, layout: certificateStampLayout, suffixLength: certificateSuffixLength, now: time.Now}
}

func NewNonConformityCodeGenerator(prefix string) *CodeGenerator {
	if prefix == "" {
		prefix = "NC"
	}
	return &CodeGenerator{prefix: prefix, layout: nonConformityStampLayout, suffixLength: nonConformitySuffixLength, now: time.Now}
}

func (g *CodeGenerator) NewCode() (string, error) {
	return NewCode(g.prefix, g.layout, g.suffixLength, g.now())
}

// CreateWithUniqueCode calls create with fresh codes until it succeeds, fails
// with an error isCollision does not recognise, or attempts run out.
func CreateWithUniqueCode(
	ctx context.Context,
	attempts int,
	newCode func() (string, error),
	create func(ctx context.Context, code string) error,
	isCollision func(error) bool,
) error {
	if attempts < 1 {
		attempts = 1
	}
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(5*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		code, err := newCode()
		if err != nil {
			return err
		}
		if err := create(ctx, code); err != nil {
			if isCollision(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}
