package dto

import (
	"time"

	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type ProductionRecordDTO struct {
	ID             uint      `json:"id"`
	ProductID      uint      `json:"product_id"`
	OperatorID     uint      `json:"operator_id"`
	LotNumber      string    `json:"lot_number"`
	ProductionDate string    `json:"production_date"`
	Shift          string    `json:"shift"`
	ProductionLine string    `json:"production_line"`
	TotalProduced  int       `json:"total_produced"`
	TotalApproved  int       `json:"total_approved"`
	TotalRejected  int       `json:"total_rejected"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToProductionRecordDTO(r *production.ProductionRecord) *ProductionRecordDTO {
	if r == nil {
		return nil
	}
	return &ProductionRecordDTO{
		ID:             r.ID(),
		ProductID:      r.ProductID(),
		OperatorID:     r.OperatorID(),
		LotNumber:      r.LotNumber(),
		ProductionDate: r.ProductionDate().Format("2006-01-02"),
		Shift:          r.Shift().String(),
		ProductionLine: r.ProductionLine(),
		TotalProduced:  r.TotalProduced(),
		TotalApproved:  r.TotalApproved(),
		TotalRejected:  r.TotalRejected(),
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}
}

func ToProductionRecordDTOList(records []*production.ProductionRecord) []*ProductionRecordDTO {
	return mapper.MapSlice(records, ToProductionRecordDTO)
}
