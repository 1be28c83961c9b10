package models

import (
	"time"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

type ProductionRecordModel struct {
	ID             uint      `gorm:"primaryKey"`
	ProductID      uint      `gorm:"not null;index"`
	OperatorID     uint      `gorm:"not null;index"`
	LotNumber      string    `gorm:"size:50;not null;index"`
	ProductionDate time.Time `gorm:"type:date;not null;index"`
	Shift          string    `gorm:"size:20;not null"`
	ProductionLine string    `gorm:"size:100"`
	TotalProduced  int       `gorm:"not null"`
	TotalApproved  int       `gorm:"not null;default:0"`
	TotalRejected  int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProductionRecordModel) TableName() string {
	return constants.TableProductionRecords
}
