package quality

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QualityControl is the single inspection a production record may receive.
// It is immutable after creation.
type QualityControl struct {
	id                 uint
	productionRecordID uint
	inspectorID        uint
	measurements       Measurements
	wastePercentage    decimal.Decimal
	approved           bool
	notes              string
	defects            []*Defect
	createdAt          time.Time
}

// NewQualityControl computes the waste percentage from defects against totalProduced.
func NewQualityControl(
	productionRecordID uint,
	inspectorID uint,
	totalProduced int,
	measurements Measurements,
	approved bool,
	notes string,
	defects []*Defect,
) (*QualityControl, error) {
	if productionRecordID == 0 {
		return nil, fmt.Errorf("production record ID is required")
	}
	if inspectorID == 0 {
		return nil, fmt.Errorf("inspector ID is required")
	}
	for name, v := range map[string]*decimal.Decimal{
		"weight":   measurements.Weight,
		"diameter": measurements.Diameter,
		"height":   measurements.Height,
		"width":    measurements.Width,
	} {
		if v != nil && v.IsNegative() {
			return nil, fmt.Errorf("%s cannot be negative", name)
		}
	}
	if defects == nil {
		defects = []*Defect{}
	}
	totalDefects, err := SumDefects(defects)
	if err != nil {
		return nil, err
	}

	return &QualityControl{
		productionRecordID: productionRecordID,
		inspectorID:        inspectorID,
		measurements:       measurements.clone(),
		wastePercentage:    CalculateWastePercentage(totalDefects, totalProduced),
		approved:           approved,
		notes:              strings.TrimSpace(notes),
		defects:            defects,
		createdAt:          time.Now().UTC(),
	}, nil
}

func ReconstructQualityControl(
	id uint,
	productionRecordID uint,
	inspectorID uint,
	measurements Measurements,
	wastePercentage decimal.Decimal,
	approved bool,
	notes string,
	defects []*Defect,
	createdAt time.Time,
) (*QualityControl, error) {
	if id == 0 {
		return nil, fmt.Errorf("quality control ID cannot be zero")
	}
	if defects == nil {
		defects = []*Defect{}
	}
	return &QualityControl{
		id:                 id,
		productionRecordID: productionRecordID,
		inspectorID:        inspectorID,
		measurements:       measurements,
		wastePercentage:    wastePercentage,
		approved:           approved,
		notes:              notes,
		defects:            defects,
		createdAt:          createdAt,
	}, nil
}

func (q *QualityControl) ID() uint                         { return q.id }
func (q *QualityControl) ProductionRecordID() uint         { return q.productionRecordID }
func (q *QualityControl) InspectorID() uint                { return q.inspectorID }
func (q *QualityControl) Measurements() Measurements       { return q.measurements.clone() }
func (q *QualityControl) WastePercentage() decimal.Decimal { return q.wastePercentage }
func (q *QualityControl) Approved() bool                   { return q.approved }
func (q *QualityControl) Notes() string                    { return q.notes }
func (q *QualityControl) CreatedAt() time.Time             { return q.createdAt }
func (q *QualityControl) TotalDefects() int                { return TotalDefects(q.defects) }

func (q *QualityControl) Defects() []*Defect {
	out := make([]*Defect, len(q.defects))
	copy(out, q.defects)
	return out
}

func (q *QualityControl) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("quality control ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("quality control ID cannot be zero")
	}
	q.id = id
	return nil
}
