package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

// Alert is an incident raised when a lot's waste percentage crosses its
// product threshold. Threshold and actual value are frozen at creation.
type Alert struct {
	id                 uint
	productID          uint
	productionRecordID *uint
	qualityControlID   *uint
	alertType          string
	threshold          decimal.Decimal
	actualValue        decimal.Decimal
	status             Status
	resolvedBy         *uint
	resolvedAt         *time.Time
	resolutionNotes    string
	emailSent          bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewWasteThresholdAlert(
	productID uint,
	productionRecordID uint,
	qualityControlID uint,
	threshold decimal.Decimal,
	actualValue decimal.Decimal,
) (*Alert, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if !Exceeds(actualValue, threshold) {
		return nil, fmt.Errorf("waste %s does not exceed threshold %s", actualValue.StringFixed(2), threshold.StringFixed(2))
	}

	now := time.Now().UTC()
	a := &Alert{
		productID:   productID,
		alertType:   constants.AlertTypeWasteThreshold,
		threshold:   threshold,
		actualValue: actualValue,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}
	if productionRecordID != 0 {
		a.productionRecordID = &productionRecordID
	}
	if qualityControlID != 0 {
		a.qualityControlID = &qualityControlID
	}
	return a, nil
}

func ReconstructAlert(
	id uint,
	productID uint,
	productionRecordID *uint,
	qualityControlID *uint,
	alertType string,
	threshold, actualValue decimal.Decimal,
	status Status,
	resolvedBy *uint,
	resolvedAt *time.Time,
	resolutionNotes string,
	emailSent bool,
	createdAt, updatedAt time.Time,
) (*Alert, error) {
	if id == 0 {
		return nil, fmt.Errorf("alert ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid alert status: %s", status)
	}
	return &Alert{
		id:                 id,
		productID:          productID,
		productionRecordID: productionRecordID,
		qualityControlID:   qualityControlID,
		alertType:          alertType,
		threshold:          threshold,
		actualValue:        actualValue,
		status:             status,
		resolvedBy:         resolvedBy,
		resolvedAt:         resolvedAt,
		resolutionNotes:    resolutionNotes,
		emailSent:          emailSent,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (a *Alert) ID() uint                     { return a.id }
func (a *Alert) ProductID() uint              { return a.productID }
func (a *Alert) ProductionRecordID() *uint    { return a.productionRecordID }
func (a *Alert) QualityControlID() *uint      { return a.qualityControlID }
func (a *Alert) AlertType() string            { return a.alertType }
func (a *Alert) Threshold() decimal.Decimal   { return a.threshold }
func (a *Alert) ActualValue() decimal.Decimal { return a.actualValue }
func (a *Alert) Status() Status               { return a.status }
func (a *Alert) ResolvedBy() *uint            { return a.resolvedBy }
func (a *Alert) ResolvedAt() *time.Time       { return a.resolvedAt }
func (a *Alert) ResolutionNotes() string      { return a.resolutionNotes }
func (a *Alert) EmailSent() bool              { return a.emailSent }
func (a *Alert) CreatedAt() time.Time         { return a.createdAt }
func (a *Alert) UpdatedAt() time.Time         { return a.updatedAt }

func (a *Alert) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("alert ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("alert ID cannot be zero")
	}
	a.id = id
	return nil
}

// Resolve closes the alert with mandatory notes.
func (a *Alert) Resolve(resolverID uint, notes string, at time.Time) error {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return fmt.Errorf("resolution notes are required")
	}
	if err := a.close(StatusResolved, resolverID, at); err != nil {
		return err
	}
	a.resolutionNotes = notes
	return nil
}

func (a *Alert) Dismiss(resolverID uint, at time.Time) error {
	return a.close(StatusDismissed, resolverID, at)
}

func (a *Alert) close(next Status, resolverID uint, at time.Time) error {
	if resolverID == 0 {
		return fmt.Errorf("resolver ID is required")
	}
	if !a.status.CanTransitionTo(next) {
		return ErrNotActive
	}
	at = at.UTC()
	a.status = next
	a.resolvedBy = &resolverID
	a.resolvedAt = &at
	a.updatedAt = at
	return nil
}

func (a *Alert) MarkEmailSent() {
	a.emailSent = true
}
