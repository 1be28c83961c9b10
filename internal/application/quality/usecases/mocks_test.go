package usecases

import (
	"context"
	"sync"
	"time"

	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
)

type mockRecordRepository struct {
	production.Repository
	GetByIDFunc func(ctx context.Context, id uint) (*production.ProductionRecord, error)
}

func (m *mockRecordRepository) GetByID(ctx context.Context, id uint) (*production.ProductionRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, production.ErrRecordNotFound
}

// memoryQualityRepository enforces one control per production record the
// way the unique index does.
type memoryQualityRepository struct {
	mu       sync.Mutex
	byID     map[uint]*quality.QualityControl
	byRecord map[uint]uint
	nextID   uint

	// existsGate, when set, holds every existence check until all callers arrive.
	existsGate *sync.WaitGroup
	ListFunc   func(ctx context.Context, filter quality.Filter) ([]*quality.QualityControl, int64, error)
}

func newMemoryQualityRepository() *memoryQualityRepository {
	return &memoryQualityRepository{
		byID:     make(map[uint]*quality.QualityControl),
		byRecord: make(map[uint]uint),
	}
}

func (m *memoryQualityRepository) Create(_ context.Context, qc *quality.QualityControl) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, taken := m.byRecord[qc.ProductionRecordID()]; taken {
		return quality.ErrAlreadyInspected
	}
	m.nextID++
	if err := qc.SetID(m.nextID); err != nil {
		return err
	}
	for i, d := range qc.Defects() {
		d.Attach(uint(i+1), qc.ID())
	}
	m.byID[qc.ID()] = qc
	m.byRecord[qc.ProductionRecordID()] = qc.ID()
	return nil
}

func (m *memoryQualityRepository) GetByID(_ context.Context, id uint) (*quality.QualityControl, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if qc, ok := m.byID[id]; ok {
		return qc, nil
	}
	return nil, quality.ErrControlNotFound
}

func (m *memoryQualityRepository) GetByProductionRecordID(ctx context.Context, recordID uint) (*quality.QualityControl, error) {
	m.mu.Lock()
	id, ok := m.byRecord[recordID]
	m.mu.Unlock()
	if !ok {
		return nil, quality.ErrControlNotFound
	}
	return m.GetByID(ctx, id)
}

func (m *memoryQualityRepository) ExistsForProductionRecord(_ context.Context, recordID uint) (bool, error) {
	if m.existsGate != nil {
		m.existsGate.Done()
		m.existsGate.Wait()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.byRecord[recordID]
	return ok, nil
}

func (m *memoryQualityRepository) List(ctx context.Context, filter quality.Filter) ([]*quality.QualityControl, int64, error) {
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

type mockTrigger struct {
	mu           sync.Mutex
	EvaluateFunc func(ctx context.Context, product *catalog.Product, record *production.ProductionRecord, qc *quality.QualityControl) (*alert.Alert, error)
	notified     []*alert.Alert
}

func (m *mockTrigger) Evaluate(ctx context.Context, product *catalog.Product, record *production.ProductionRecord, qc *quality.QualityControl) (*alert.Alert, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, product, record, qc)
	}
	return nil, nil
}

func (m *mockTrigger) Notify(a *alert.Alert, _ string, _ *production.ProductionRecord) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notified = append(m.notified, a)
	return true
}

// passthroughTx runs fn inline and counts the units of work that failed.
type passthroughTx struct {
	mu         sync.Mutex
	rolledBack int
}

func (p *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	if err != nil {
		p.mu.Lock()
		p.rolledBack++
		p.mu.Unlock()
	}
	return err
}

func lot(id uint, produced, approved, rejected int) *production.ProductionRecord {
	r, err := production.ReconstructProductionRecord(id, 3, 9, "L-2026-015",
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), production.ShiftMorning, "Inyectora 2",
		produced, approved, rejected, time.Now(), time.Now())
	if err != nil {
		panic(err)
	}
	return r
}

func recordRepoWith(records ...*production.ProductionRecord) *mockRecordRepository {
	return &mockRecordRepository{GetByIDFunc: func(_ context.Context, id uint) (*production.ProductionRecord, error) {
		for _, r := range records {
			if r.ID() == id {
				return r, nil
			}
		}
		return nil, production.ErrRecordNotFound
	}}
}
