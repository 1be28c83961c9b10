package dto

import (
	"time"

	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type AlertDTO struct {
	ID                 uint       `json:"id"`
	ProductID          uint       `json:"product_id"`
	ProductionRecordID *uint      `json:"production_record_id"`
	QualityControlID   *uint      `json:"quality_control_id"`
	AlertType          string     `json:"alert_type"`
	Threshold          string     `json:"threshold"`
	ActualValue        string     `json:"actual_value"`
	Status             string     `json:"status"`
	ResolvedBy         *uint      `json:"resolved_by"`
	ResolvedAt         *time.Time `json:"resolved_at"`
	ResolutionNotes    string     `json:"resolution_notes,omitempty"`
	EmailSent          bool       `json:"email_sent"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func ToAlertDTO(a *alert.Alert) *AlertDTO {
	if a == nil {
		return nil
	}
	return &AlertDTO{
		ID:                 a.ID(),
		ProductID:          a.ProductID(),
		ProductionRecordID: a.ProductionRecordID(),
		QualityControlID:   a.QualityControlID(),
		AlertType:          a.AlertType(),
		Threshold:          a.Threshold().StringFixed(2),
		ActualValue:        a.ActualValue().StringFixed(2),
		Status:             a.Status().String(),
		ResolvedBy:         a.ResolvedBy(),
		ResolvedAt:         a.ResolvedAt(),
		ResolutionNotes:    a.ResolutionNotes(),
		EmailSent:          a.EmailSent(),
		CreatedAt:          a.CreatedAt(),
		UpdatedAt:          a.UpdatedAt(),
	}
}

func ToAlertDTOList(alerts []*alert.Alert) []*AlertDTO {
	return mapper.MapSlice(alerts, ToAlertDTO)
}
