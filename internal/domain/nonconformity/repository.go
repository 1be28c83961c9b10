package nonconformity

import (
	"context"

	"github.com/polyforma/qualitrack/internal/shared/query"
)

type Repository interface {
	// Create returns ErrCodeTaken when the code is already in use.
	Create(ctx context.Context, n *NonConformity) error
	GetByID(ctx context.Context, id uint) (*NonConformity, error)
	List(ctx context.Context, filter Filter) ([]*NonConformity, int64, error)
	Update(ctx context.Context, n *NonConformity) error
}

type Filter struct {
	query.BaseFilter
	Status             *Status
	Severity           *Severity
	ProductID          *uint
	ProductionRecordID *uint
	ReportedBy         *uint
}
