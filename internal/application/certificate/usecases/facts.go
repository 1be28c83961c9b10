package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/domain/directory"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
)

// factsLoader gathers everything a certificate document shows.
type factsLoader struct {
	recordRepo       production.Repository
	qualityRepo      quality.Repository
	catalog          catalog.Reader
	directory        directory.Reader
	defaultThreshold decimal.Decimal
}

type loadedFacts struct {
	facts   certificate.DocumentFacts
	product *catalog.Product
	record  *production.ProductionRecord
}

func (l *factsLoader) load(ctx context.Context, c *certificate.Certificate, approverID uint, issuedAt time.Time) (*loadedFacts, error) {
	record, err := l.recordRepo.GetByID(ctx, c.ProductionRecordID())
	if err != nil {
		return nil, fmt.Errorf("load production record: %w", err)
	}

	var qc *quality.QualityControl
	if qcID := c.QualityControlID(); qcID != nil {
		qc, err = l.qualityRepo.GetByID(ctx, *qcID)
	} else {
		qc, err = l.qualityRepo.GetByProductionRecordID(ctx, record.ID())
	}
	if err != nil {
		return nil, fmt.Errorf("load quality control: %w", err)
	}

	product, err := l.catalog.GetProduct(ctx, c.ProductID())
	if err != nil {
		if !stderrors.Is(err, catalog.ErrProductNotFound) {
			return nil, fmt.Errorf("load product: %w", err)
		}
		product = &catalog.Product{ID: c.ProductID(), Name: fmt.Sprintf("#%d", c.ProductID())}
	}

	m := qc.Measurements()
	facts := certificate.DocumentFacts{
		Code:               c.Code(),
		IssuedAt:           issuedAt.UTC(),
		RequestedBy:        l.userName(ctx, c.RequestedBy()),
		ApprovedBy:         l.userName(ctx, approverID),
		ProductID:          product.ID,
		ProductName:        product.Name,
		AlertThreshold:     alert.ThresholdFor(product.AlertThreshold, l.defaultThreshold),
		ProductionRecordID: record.ID(),
		LotNumber:          record.LotNumber(),
		ProductionDate:     record.ProductionDate(),
		Shift:              record.Shift().String(),
		ProductionLine:     record.ProductionLine(),
		TotalProduced:      record.TotalProduced(),
		TotalApproved:      record.TotalApproved(),
		TotalRejected:      record.TotalRejected(),
		QualityControlID:   qc.ID(),
		InspectedAt:        qc.CreatedAt(),
		Weight:             m.Weight,
		Diameter:           m.Diameter,
		Height:             m.Height,
		Width:              m.Width,
		WastePercentage:    qc.WastePercentage(),
		Approved:           qc.Approved(),
		Notes:              qc.Notes(),
		ExtraMeasurements:  extraMeasurementFacts(m.Extra),
	}
	for _, d := range qc.Defects() {
		facts.Defects = append(facts.Defects, certificate.DefectFact{
			Type:        d.DefectType().String(),
			Label:       d.DefectType().Label(),
			Quantity:    d.Quantity(),
			Description: d.Description(),
		})
	}

	return &loadedFacts{facts: facts, product: product, record: record}, nil
}

func extraMeasurementFacts(extra map[string]any) []certificate.MeasurementFact {
	if len(extra) == 0 {
		return nil
	}
	out := make([]certificate.MeasurementFact, 0, len(extra))
	for _, name := range slices.Sorted(maps.Keys(extra)) {
		out = append(out, certificate.MeasurementFact{Name: name, Value: fmt.Sprint(extra[name])})
	}
	return out
}

// userName falls back to the numeric ID when the directory cannot help.
func (l *factsLoader) userName(ctx context.Context, userID uint) string {
	if l.directory != nil {
		if u, err := l.directory.GetUser(ctx, userID); err == nil && u.Name != "" {
			return u.Name
		}
	}
	return fmt.Sprintf("#%d", userID)
}
