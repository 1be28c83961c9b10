package alert

import (
	"context"
	"time"

	"github.com/polyforma/qualitrack/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, a *Alert) error
	GetByID(ctx context.Context, id uint) (*Alert, error)
	List(ctx context.Context, filter Filter) ([]*Alert, int64, error)
	// SaveClosure persists a resolve or dismiss only while the stored row is
	// still activa. It returns ErrNotActive otherwise.
	SaveClosure(ctx context.Context, a *Alert) error
	MarkEmailSent(ctx context.Context, id uint) error
}

type Filter struct {
	query.BaseFilter
	Status             *Status
	ProductID          *uint
	ProductionRecordID *uint
	CreatedFrom        *time.Time
	CreatedTo          *time.Time
}
