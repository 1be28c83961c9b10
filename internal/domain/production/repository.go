package production

import (
	"context"
	"time"

	"github.com/polyforma/qualitrack/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, record *ProductionRecord) error
	// GetByID returns ErrRecordNotFound when the record does not exist.
	GetByID(ctx context.Context, id uint) (*ProductionRecord, error)
	List(ctx context.Context, filter Filter) ([]*ProductionRecord, int64, error)
}

type Filter struct {
	query.BaseFilter
	ProductID *uint
	// LotNumber matches as a substring.
	LotNumber     string
	DateFrom      *time.Time
	DateTo        *time.Time
	Shift         *Shift
	HasInspection *bool
}
