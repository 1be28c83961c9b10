package usecases

import (
	"context"
	"time"

	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/domain/production"
)

type mockNonConformityRepository struct {
	CreateFunc  func(ctx context.Context, n *nonconformity.NonConformity) error
	GetByIDFunc func(ctx context.Context, id uint) (*nonconformity.NonConformity, error)
	ListFunc    func(ctx context.Context, filter nonconformity.Filter) ([]*nonconformity.NonConformity, int64, error)
	UpdateFunc  func(ctx context.Context, n *nonconformity.NonConformity) error
}

func (m *mockNonConformityRepository) Create(ctx context.Context, n *nonconformity.NonConformity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return n.SetID(1)
}

func (m *mockNonConformityRepository) GetByID(ctx context.Context, id uint) (*nonconformity.NonConformity, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nonconformity.ErrNonConformityNotFound
}

func (m *mockNonConformityRepository) List(ctx context.Context, filter nonconformity.Filter) ([]*nonconformity.NonConformity, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockNonConformityRepository) Update(ctx context.Context, n *nonconformity.NonConformity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

type mockRecordRepository struct {
	production.Repository
}

func (mockRecordRepository) GetByID(_ context.Context, id uint) (*production.ProductionRecord, error) {
	if id != 10 {
		return nil, production.ErrRecordNotFound
	}
	now := time.Now()
	return production.ReconstructProductionRecord(10, 3, 9, "L-2026-015", now, production.ShiftMorning, "Inyectora 2", 1000, 960, 40, now, now)
}

type mockCatalog struct{}

func (mockCatalog) GetProduct(_ context.Context, id uint) (*catalog.Product, error) {
	if id != 3 && id != 4 {
		return nil, catalog.ErrProductNotFound
	}
	return &catalog.Product{ID: id, Name: "Tapa"}, nil
}

type fixedCodes struct {
	codes []string
	next  int
}

func (f *fixedCodes) NewCode() (string, error) {
	code := f.codes[f.next%len(f.codes)]
	f.next++
	return code, nil
}

func storedNonConformity(status nonconformity.Status) *nonconformity.NonConformity {
	now := time.Now().UTC()
	n, err := nonconformity.ReconstructNonConformity(30, "NC-20260115-ABC234", nil, nil, 2,
		"Piezas con rebaba en la línea 2", nonconformity.SeverityHigh, status, nil, "", nil, now, now)
	if err != nil {
		panic(err)
	}
	return n
}
