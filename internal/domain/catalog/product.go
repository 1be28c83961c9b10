// Package catalog is the read-only view of the product catalog the quality
// engine depends on. Catalog maintenance lives elsewhere.
package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID   uint
	Name string
	// AlertThreshold is nil when the product uses the system default.
	AlertThreshold *decimal.Decimal
}

type Reader interface {
	// GetProduct returns ErrProductNotFound for unknown IDs.
	GetProduct(ctx context.Context, id uint) (*Product, error)
}
