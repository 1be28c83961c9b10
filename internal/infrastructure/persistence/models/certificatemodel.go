package models

import (
	"time"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

type CertificateModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Code               string `gorm:"size:50;not null;uniqueIndex:uk_certificates_code"`
	ProductID          uint   `gorm:"not null;index"`
	ProductionRecordID uint   `gorm:"not null;index"`
	QualityControlID   *uint
	RequestedBy        uint `gorm:"not null;index"`
	ApprovedBy         *uint
	Status             string  `gorm:"size:20;not null;index"`
	DocumentRef        *string `gorm:"size:255"`
	ApprovedAt         *time.Time
	RejectionReason    string `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (CertificateModel) TableName() string {
	return constants.TableCertificates
}
