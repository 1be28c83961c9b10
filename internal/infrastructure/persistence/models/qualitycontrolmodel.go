package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

// QualityControlModel has a unique index on ProductionRecordID: one
// inspection per lot is enforced here, not by the application.
type QualityControlModel struct {
	ID                 uint             `gorm:"primaryKey"`
	ProductionRecordID uint             `gorm:"not null;uniqueIndex:uk_quality_controls_record"`
	InspectorID        uint             `gorm:"not null;index"`
	Weight             *decimal.Decimal `gorm:"type:decimal(10,3)"`
	Diameter           *decimal.Decimal `gorm:"type:decimal(10,3)"`
	Height             *decimal.Decimal `gorm:"type:decimal(10,3)"`
	Width              *decimal.Decimal `gorm:"type:decimal(10,3)"`
	ExtraMeasurements  datatypes.JSON
	WastePercentage    decimal.Decimal `gorm:"type:decimal(7,2);not null"`
	Approved           bool            `gorm:"not null"`
	Notes              string          `gorm:"type:text"`
	CreatedAt          time.Time       `gorm:"index"`

	Defects []DefectModel `gorm:"foreignKey:QualityControlID"`
}

func (QualityControlModel) TableName() string {
	return constants.TableQualityControls
}

type DefectModel struct {
	ID               uint   `gorm:"primaryKey"`
	QualityControlID uint   `gorm:"not null;index"`
	DefectType       string `gorm:"size:30;not null"`
	Quantity         int    `gorm:"not null"`
	Description      string `gorm:"size:500"`
	CreatedAt        time.Time
}

func (DefectModel) TableName() string {
	return constants.TableDefects
}
