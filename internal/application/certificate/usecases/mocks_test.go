package usecases

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/domain/directory"
	"github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
)

type mockCertificateRepository struct {
	CreateFunc       func(ctx context.Context, c *certificate.Certificate) error
	GetByIDFunc      func(ctx context.Context, id uint) (*certificate.Certificate, error)
	ListFunc         func(ctx context.Context, filter certificate.Filter) ([]*certificate.Certificate, int64, error)
	SaveDecisionFunc func(ctx context.Context, c *certificate.Certificate) error
}

func (m *mockCertificateRepository) Create(ctx context.Context, c *certificate.Certificate) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return c.SetID(1)
}

func (m *mockCertificateRepository) GetByID(ctx context.Context, id uint) (*certificate.Certificate, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, certificate.ErrCertificateNotFound
}

func (m *mockCertificateRepository) List(ctx context.Context, filter certificate.Filter) ([]*certificate.Certificate, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCertificateRepository) SaveDecision(ctx context.Context, c *certificate.Certificate) error {
	if m.SaveDecisionFunc != nil {
		return m.SaveDecisionFunc(ctx, c)
	}
	return nil
}

type mockRecordRepository struct {
	production.Repository
	records map[uint]*production.ProductionRecord
}

func (m *mockRecordRepository) GetByID(_ context.Context, id uint) (*production.ProductionRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, production.ErrRecordNotFound
}

type mockQualityRepository struct {
	quality.Repository
	controls map[uint]*quality.QualityControl
}

func (m *mockQualityRepository) GetByID(_ context.Context, id uint) (*quality.QualityControl, error) {
	if qc, ok := m.controls[id]; ok {
		return qc, nil
	}
	return nil, quality.ErrControlNotFound
}

func (m *mockQualityRepository) GetByProductionRecordID(_ context.Context, recordID uint) (*quality.QualityControl, error) {
	for _, qc := range m.controls {
		if qc.ProductionRecordID() == recordID {
			return qc, nil
		}
	}
	return nil, quality.ErrControlNotFound
}

func (m *mockQualityRepository) ExistsForProductionRecord(ctx context.Context, recordID uint) (bool, error) {
	_, err := m.GetByProductionRecordID(ctx, recordID)
	return err == nil, nil
}

type mockCatalog struct{}

func (mockCatalog) GetProduct(_ context.Context, id uint) (*catalog.Product, error) {
	if id != 3 {
		return nil, catalog.ErrProductNotFound
	}
	return &catalog.Product{ID: 3, Name: "Tapa 38mm"}, nil
}

type mockDirectory struct{}

func (mockDirectory) GetUser(_ context.Context, id uint) (*directory.User, error) {
	return &directory.User{ID: id, Name: fmt.Sprintf("Usuario %d", id), Active: true}, nil
}

func (mockDirectory) ListActiveByRoles(context.Context, ...string) ([]*directory.User, error) {
	return nil, nil
}

type mockRenderer struct {
	mu        sync.Mutex
	rendered  []certificate.DocumentFacts
	removed   []string
	RenderErr error
}

func (m *mockRenderer) Render(_ context.Context, facts certificate.DocumentFacts) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RenderErr != nil {
		return "", m.RenderErr
	}
	m.rendered = append(m.rendered, facts)
	return "certificates/2026/01/15/" + facts.Code + ".pdf", nil
}

func (m *mockRenderer) Remove(_ context.Context, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, ref)
	return nil
}

type mockReader struct {
	docs map[string][]byte
}

func (m *mockReader) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	b, ok := m.docs[ref]
	if !ok {
		return nil, certificate.ErrDocumentMissing
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

type mockNotifier struct {
	requesters []uint
	summaries  []notification.CertificateSummary
}

func (m *mockNotifier) CertificateApproved(requesterID uint, summary notification.CertificateSummary) bool {
	m.requesters = append(m.requesters, requesterID)
	m.summaries = append(m.summaries, summary)
	return true
}

type sequenceCodes struct {
	codes []string
	next  int
}

func (s *sequenceCodes) NewCode() (string, error) {
	code := s.codes[s.next%len(s.codes)]
	s.next++
	return code, nil
}

func fixtures() (*mockRecordRepository, *mockQualityRepository) {
	now := time.Date(2026, 1, 15, 14, 0, 0, 0, time.UTC)
	inspected, _ := production.ReconstructProductionRecord(10, 3, 9, "L-2026-015", now, production.ShiftMorning, "Inyectora 2", 1000, 960, 40, now, now)
	uninspected, _ := production.ReconstructProductionRecord(11, 3, 9, "L-2026-016", now, production.ShiftNight, "Inyectora 2", 500, 500, 0, now, now)
	other, _ := production.ReconstructProductionRecord(12, 3, 9, "L-2026-017", now, production.ShiftAfternoon, "Inyectora 1", 800, 790, 10, now, now)

	flash := quality.ReconstructDefect(1, 20, quality.DefectFlash, 30, "", now)
	qc, _ := quality.NewQualityControl(10, 2, 1000,
		quality.Measurements{Extra: map[string]any{"torque": 1.2, "color": "azul", "brillo": true}}, true, "sin observaciones", []*quality.Defect{flash})
	_ = qc.SetID(20)
	otherQC, _ := quality.NewQualityControl(12, 2, 800, quality.Measurements{}, true, "", nil)
	_ = otherQC.SetID(21)

	return &mockRecordRepository{records: map[uint]*production.ProductionRecord{10: inspected, 11: uninspected, 12: other}},
		&mockQualityRepository{controls: map[uint]*quality.QualityControl{20: qc, 21: otherQC}}
}

func certificateIn(status certificate.Status, ref *string) *certificate.Certificate {
	now := time.Now().UTC()
	qcID := uint(20)
	var approvedBy *uint
	var approvedAt *time.Time
	if status != certificate.StatusPending {
		by := uint(5)
		approvedBy = &by
		approvedAt = &now
	}
	c, err := certificate.ReconstructCertificate(40, "CERT-20260115140000-AB2C", 3, 10, &qcID, 2, approvedBy,
		status, ref, approvedAt, "", now, now)
	if err != nil {
		panic(err)
	}
	return c
}
