package dto

import (
	"time"

	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type NonConformityDTO struct {
	ID                 uint       `json:"id"`
	Code               string     `json:"code"`
	ProductID          *uint      `json:"product_id"`
	ProductionRecordID *uint      `json:"production_record_id"`
	ReportedBy         uint       `json:"reported_by"`
	Description        string     `json:"description"`
	Severity           string     `json:"severity"`
	Status             string     `json:"status"`
	ResolvedBy         *uint      `json:"resolved_by"`
	CorrectiveAction   string     `json:"corrective_action,omitempty"`
	ResolvedAt         *time.Time `json:"resolved_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToNonConformityDTO(n *nonconformity.NonConformity) *NonConformityDTO {
	if n == nil {
		return nil
	}
	return &NonConformityDTO{
		ID:                 n.ID(),
		Code:               n.Code(),
		ProductID:          n.ProductID(),
		ProductionRecordID: n.ProductionRecordID(),
		ReportedBy:         n.ReportedBy(),
		Description:        n.Description(),
		Severity:           n.Severity().String(),
		Status:             n.Status().String(),
		ResolvedBy:         n.ResolvedBy(),
		CorrectiveAction:   n.CorrectiveAction(),
		ResolvedAt:         n.ResolvedAt(),
		CreatedAt:          n.CreatedAt(),
		UpdatedAt:          n.UpdatedAt(),
	}
}

func ToNonConformityDTOList(items []*nonconformity.NonConformity) []*NonConformityDTO {
	return mapper.MapSlice(items, ToNonConformityDTO)
}
