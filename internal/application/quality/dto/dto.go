package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type DefectDTO struct {
	ID          uint      `json:"id"`
	DefectType  string    `json:"defect_type"`
	Label       string    `json:"label"`
	Quantity    int       `json:"quantity"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type QualityControlDTO struct {
	ID                 uint           `json:"id"`
	ProductionRecordID uint           `json:"production_record_id"`
	InspectorID        uint           `json:"inspector_id"`
	Weight             *string        `json:"weight"`
	Diameter           *string        `json:"diameter"`
	Height             *string        `json:"height"`
	Width              *string        `json:"width"`
	ExtraMeasurements  map[string]any `json:"extra_measurements,omitempty"`
	WastePercentage    string         `json:"waste_percentage"`
	TotalDefects       int            `json:"total_defects"`
	Approved           bool           `json:"approved"`
	Notes              string         `json:"notes,omitempty"`
	Defects            []*DefectDTO   `json:"defects"`
	CreatedAt          time.Time      `json:"created_at"`
}

// SubmitResultDTO is the inspection plus what the alert trigger did with it.
type SubmitResultDTO struct {
	QualityControl     *QualityControlDTO `json:"quality_control"`
	AlertRaised        bool               `json:"alert_raised"`
	AlertID            *uint              `json:"alert_id,omitempty"`
	NotificationQueued bool               `json:"notification_queued"`
}

func ToDefectDTO(d *quality.Defect) *DefectDTO {
	return &DefectDTO{
		ID:          d.ID(),
		DefectType:  d.DefectType().String(),
		Label:       d.DefectType().Label(),
		Quantity:    d.Quantity(),
		Description: d.Description(),
		CreatedAt:   d.CreatedAt(),
	}
}

func ToQualityControlDTO(qc *quality.QualityControl) *QualityControlDTO {
	if qc == nil {
		return nil
	}
	m := qc.Measurements()
	return &QualityControlDTO{
		ID:                 qc.ID(),
		ProductionRecordID: qc.ProductionRecordID(),
		InspectorID:        qc.InspectorID(),
		Weight:             fixed(m.Weight),
		Diameter:           fixed(m.Diameter),
		Height:             fixed(m.Height),
		Width:              fixed(m.Width),
		ExtraMeasurements:  m.Extra,
		WastePercentage:    qc.WastePercentage().StringFixed(2),
		TotalDefects:       qc.TotalDefects(),
		Approved:           qc.Approved(),
		Notes:              qc.Notes(),
		Defects:            mapper.MapSlice(qc.Defects(), ToDefectDTO),
		CreatedAt:          qc.CreatedAt(),
	}
}

func ToQualityControlDTOList(controls []*quality.QualityControl) []*QualityControlDTO {
	return mapper.MapSlice(controls, ToQualityControlDTO)
}

func fixed(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
