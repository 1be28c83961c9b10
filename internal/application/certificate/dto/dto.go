package dto

import (
	"time"

	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type CertificateDTO struct {
	ID                 uint       `json:"id"`
	Code               string     `json:"code"`
	ProductID          uint       `json:"product_id"`
	ProductionRecordID uint       `json:"production_record_id"`
	QualityControlID   *uint      `json:"quality_control_id"`
	RequestedBy        uint       `json:"requested_by"`
	ApprovedBy         *uint      `json:"approved_by"`
	Status             string     `json:"status"`
	HasDocument        bool       `json:"has_document"`
	ApprovedAt         *time.Time `json:"approved_at"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type ApproveResultDTO struct {
	Certificate        *CertificateDTO `json:"certificate"`
	NotificationQueued bool            `json:"notification_queued"`
}

func ToCertificateDTO(c *certificate.Certificate) *CertificateDTO {
	if c == nil {
		return nil
	}
	ref := c.DocumentRef()
	return &CertificateDTO{
		ID:                 c.ID(),
		Code:               c.Code(),
		ProductID:          c.ProductID(),
		ProductionRecordID: c.ProductionRecordID(),
		QualityControlID:   c.QualityControlID(),
		RequestedBy:        c.RequestedBy(),
		ApprovedBy:         c.ApprovedBy(),
		Status:             c.Status().String(),
		HasDocument:        ref != nil && *ref != "",
		ApprovedAt:         c.ApprovedAt(),
		RejectionReason:    c.RejectionReason(),
		CreatedAt:          c.CreatedAt(),
		UpdatedAt:          c.UpdatedAt(),
	}
}

func ToCertificateDTOList(certs []*certificate.Certificate) []*CertificateDTO {
	return mapper.MapSlice(certs, ToCertificateDTO)
}
