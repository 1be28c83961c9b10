package quality

import (
	"context"
	"time"

	"github.com/polyforma/qualitrack/internal/shared/query"
)

type Repository interface {
	// Create stores the control and all of its defects atomically. It returns
	// ErrAlreadyInspected if the production record already has a control.
	Create(ctx context.Context, qc *QualityControl) error
	GetByID(ctx context.Context, id uint) (*QualityControl, error)
	// GetByProductionRecordID returns ErrControlNotFound when the lot is uninspected.
	GetByProductionRecordID(ctx context.Context, productionRecordID uint) (*QualityControl, error)
	ExistsForProductionRecord(ctx context.Context, productionRecordID uint) (bool, error)
	List(ctx context.Context, filter Filter) ([]*QualityControl, int64, error)
}

type Filter struct {
	query.BaseFilter
	ProductionRecordID *uint
	ProductID          *uint
	LotNumber          string
	Shift              string
	Approved           *bool
	DateFrom           *time.Time
	DateTo             *time.Time
}
