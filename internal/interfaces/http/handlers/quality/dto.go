package quality

import (
	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/application/quality/usecases"
	"github.com/polyforma/qualitrack/internal/shared/auth"
)

type DefectRequest struct {
	DefectType  string `json:"defect_type" binding:"required"`
	Quantity    int    `json:"quantity" binding:"gte=0,lte=1000000000"`
	Description string `json:"description" binding:"max=500"`
}

type SubmitQualityControlRequest struct {
	ProductionRecordID uint             `json:"production_record_id" binding:"required"`
	Weight             *decimal.Decimal `json:"weight"`
	Diameter           *decimal.Decimal `json:"diameter"`
	Height             *decimal.Decimal `json:"height"`
	Width              *decimal.Decimal `json:"width"`
	ExtraMeasurements  map[string]any   `json:"extra_measurements"`
	Approved           *bool            `json:"approved"`
	Notes              string           `json:"notes" binding:"max=2000"`
	Defects            []DefectRequest  `json:"defects" binding:"dive"`
}

func (r *SubmitQualityControlRequest) ToCommand(actor auth.Actor) usecases.SubmitQualityControlCommand {
	defects := make([]usecases.DefectInput, 0, len(r.Defects))
	for _, d := range r.Defects {
		defects = append(defects, usecases.DefectInput{
			DefectType:  d.DefectType,
			Quantity:    d.Quantity,
			Description: d.Description,
		})
	}
	return usecases.SubmitQualityControlCommand{
		Actor:              actor,
		ProductionRecordID: r.ProductionRecordID,
		Weight:             r.Weight,
		Diameter:           r.Diameter,
		Height:             r.Height,
		Width:              r.Width,
		ExtraMeasurements:  r.ExtraMeasurements,
		Approved:           r.Approved,
		Notes:              r.Notes,
		Defects:            defects,
	}
}
