package usecases

import (
	"context"

	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/production"
)

type mockProductionRepository struct {
	CreateFunc  func(ctx context.Context, r *production.ProductionRecord) error
	GetByIDFunc func(ctx context.Context, id uint) (*production.ProductionRecord, error)
	ListFunc    func(ctx context.Context, filter production.Filter) ([]*production.ProductionRecord, int64, error)
}

func (m *mockProductionRepository) Create(ctx context.Context, r *production.ProductionRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, r)
	}
	return r.SetID(1)
}

func (m *mockProductionRepository) GetByID(ctx context.Context, id uint) (*production.ProductionRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, production.ErrRecordNotFound
}

func (m *mockProductionRepository) List(ctx context.Context, filter production.Filter) ([]*production.ProductionRecord, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCatalog struct {
	GetProductFunc func(ctx context.Context, id uint) (*catalog.Product, error)
}

func (m *mockCatalog) GetProduct(ctx context.Context, id uint) (*catalog.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return &catalog.Product{ID: id, Name: "Tapa 38mm"}, nil
}
