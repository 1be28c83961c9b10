package certificate

import (
	"context"

	"github.com/polyforma/qualitrack/internal/shared/query"
)

type Repository interface {
	// Create returns ErrCodeTaken when the code is already in use.
	Create(ctx context.Context, c *Certificate) error
	GetByID(ctx context.Context, id uint) (*Certificate, error)
	List(ctx context.Context, filter Filter) ([]*Certificate, int64, error)
	// SaveDecision persists an approve or reject only while the stored row is
	// still pendiente. It returns ErrNotPending otherwise.
	SaveDecision(ctx context.Context, c *Certificate) error
}

type Filter struct {
	query.BaseFilter
	Status             *Status
	ProductID          *uint
	ProductionRecordID *uint
	RequestedBy        *uint
}
