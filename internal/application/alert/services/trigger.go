package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/domain/notification"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/shared/logger"
)

// AlertNotifier queues notifications after commit and reports whether they were queued.
type AlertNotifier interface {
	AlertRaised(summary notification.AlertSummary) bool
}

// AlertTrigger decides whether an inspection breaches its product threshold
// and records the alert. It is only invoked by the inspection submission.
type AlertTrigger struct {
	alertRepo        alert.Repository
	notifier         AlertNotifier
	defaultThreshold decimal.Decimal
	logger           logger.Interface
}

func NewAlertTrigger(
	alertRepo alert.Repository,
	notifier AlertNotifier,
	defaultThreshold decimal.Decimal,
	logger logger.Interface,
) *AlertTrigger {
	return &AlertTrigger{
		alertRepo:        alertRepo,
		notifier:         notifier,
		defaultThreshold: defaultThreshold,
		logger:           logger,
	}
}

// Evaluate creates an activa alert when the control's waste is strictly
// above the product threshold. It returns nil when no alert is due. ctx may
// carry the caller's transaction.
func (t *AlertTrigger) Evaluate(
	ctx context.Context,
	product *catalog.Product,
	record *production.ProductionRecord,
	qc *quality.QualityControl,
) (*alert.Alert, error) {
	var productThreshold *decimal.Decimal
	if product != nil {
		productThreshold = product.AlertThreshold
	}
	threshold := alert.ThresholdFor(productThreshold, t.defaultThreshold)

	if !alert.Exceeds(qc.WastePercentage(), threshold) {
		t.logger.Debugw("waste within threshold",
			"production_record_id", record.ID(),
			"waste_percentage", qc.WastePercentage().StringFixed(2),
			"threshold", threshold.StringFixed(2),
		)
		return nil, nil
	}

	a, err := alert.NewWasteThresholdAlert(record.ProductID(), record.ID(), qc.ID(), threshold, qc.WastePercentage())
	if err != nil {
		return nil, err
	}
	if err := t.alertRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	t.logger.Warnw("waste threshold exceeded",
		"alert_id", a.ID(),
		"product_id", record.ProductID(),
		"production_record_id", record.ID(),
		"waste_percentage", qc.WastePercentage().StringFixed(2),
		"threshold", threshold.StringFixed(2),
	)
	return a, nil
}

// Notify fans the alert out to supervisors and administrators. Must be called
// after the alert is committed.
func (t *AlertTrigger) Notify(a *alert.Alert, productName string, record *production.ProductionRecord) bool {
	if t.notifier == nil || a == nil {
		return false
	}
	summary := notification.AlertSummary{
		AlertID:        a.ID(),
		ProductName:    productName,
		LotNumber:      record.LotNumber(),
		ProductionDate: record.ProductionDate(),
		Threshold:      a.Threshold(),
		ActualValue:    a.ActualValue(),
		CreatedAt:      a.CreatedAt(),
	}
	if qcID := a.QualityControlID(); qcID != nil {
		summary.QualityControlID = *qcID
	}
	return t.notifier.AlertRaised(summary)
}
