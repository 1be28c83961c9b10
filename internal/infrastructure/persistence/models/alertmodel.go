package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

type AlertModel struct {
	ID                 uint            `gorm:"primaryKey"`
	ProductID          uint            `gorm:"not null;index"`
	ProductionRecordID *uint           `gorm:"index"`
	QualityControlID   *uint           `gorm:"index"`
	AlertType          string          `gorm:"size:50;not null"`
	Threshold          decimal.Decimal `gorm:"type:decimal(7,2);not null"`
	ActualValue        decimal.Decimal `gorm:"type:decimal(7,2);not null"`
	Status             string          `gorm:"size:20;not null;index"`
	ResolvedBy         *uint
	ResolvedAt         *time.Time
	ResolutionNotes    string    `gorm:"type:text"`
	EmailSent          bool      `gorm:"not null;default:false"`
	CreatedAt          time.Time `gorm:"index"`
	UpdatedAt          time.Time
}

func (AlertModel) TableName() string {
	return constants.TableAlerts
}
