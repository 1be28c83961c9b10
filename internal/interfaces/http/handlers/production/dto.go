package production

import (
	"time"

	"github.com/polyforma/qualitrack/internal/application/production/usecases"
	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/common"
	"github.com/polyforma/qualitrack/internal/shared/auth"
	"github.com/polyforma/qualitrack/internal/shared/errors"
)

type CreateProductionRecordRequest struct {
	ProductID      uint   `json:"product_id" binding:"required"`
	LotNumber      string `json:"lot_number" binding:"required,max=50"`
	ProductionDate string `json:"production_date" binding:"required,datetime=2006-01-02"`
	Shift          string `json:"shift" binding:"required,oneof=morning afternoon night"`
	ProductionLine string `json:"production_line" binding:"max=100"`
	TotalProduced  int    `json:"total_produced" binding:"required,gte=1"`
	TotalApproved  int    `json:"total_approved" binding:"gte=0"`
	TotalRejected  int    `json:"total_rejected" binding:"gte=0"`
}

func (r *CreateProductionRecordRequest) ToCommand(actor auth.Actor) (usecases.CreateProductionRecordCommand, error) {
	date, err := time.ParseInLocation(common.DateLayout, r.ProductionDate, time.UTC)
	if err != nil {
		return usecases.CreateProductionRecordCommand{}, errors.NewValidationError("invalid production_date", r.ProductionDate)
	}
	return usecases.CreateProductionRecordCommand{
		Actor:          actor,
		ProductID:      r.ProductID,
		LotNumber:      r.LotNumber,
		ProductionDate: date,
		Shift:          r.Shift,
		ProductionLine: r.ProductionLine,
		TotalProduced:  r.TotalProduced,
		TotalApproved:  r.TotalApproved,
		TotalRejected:  r.TotalRejected,
	}, nil
}
