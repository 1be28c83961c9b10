package usecases

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/domain/alert"
)

type mockAlertRepository struct {
	CreateFunc        func(ctx context.Context, a *alert.Alert) error
	GetByIDFunc       func(ctx context.Context, id uint) (*alert.Alert, error)
	ListFunc          func(ctx context.Context, filter alert.Filter) ([]*alert.Alert, int64, error)
	SaveClosureFunc   func(ctx context.Context, a *alert.Alert) error
	MarkEmailSentFunc func(ctx context.Context, id uint) error
}

func (m *mockAlertRepository) Create(ctx context.Context, a *alert.Alert) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAlertRepository) GetByID(ctx context.Context, id uint) (*alert.Alert, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, alert.ErrAlertNotFound
}

func (m *mockAlertRepository) List(ctx context.Context, filter alert.Filter) ([]*alert.Alert, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockAlertRepository) SaveClosure(ctx context.Context, a *alert.Alert) error {
	if m.SaveClosureFunc != nil {
		return m.SaveClosureFunc(ctx, a)
	}
	return nil
}

func (m *mockAlertRepository) MarkEmailSent(ctx context.Context, id uint) error {
	if m.MarkEmailSentFunc != nil {
		return m.MarkEmailSentFunc(ctx, id)
	}
	return nil
}

func storedAlert(id uint, status alert.Status) *alert.Alert {
	recordID := uint(10)
	now := time.Now().UTC()
	a, err := alert.ReconstructAlert(id, 3, &recordID, nil, "waste_threshold",
		decimal.RequireFromString("5.0"), decimal.RequireFromString("6.00"),
		status, nil, nil, "", false, now, now)
	if err != nil {
		panic(err)
	}
	return a
}
