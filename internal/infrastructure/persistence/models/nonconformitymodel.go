package models

import (
	"time"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

type NonConformityModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Code               string `gorm:"size:50;not null;uniqueIndex:uk_non_conformities_code"`
	ProductID          *uint  `gorm:"index"`
	ProductionRecordID *uint  `gorm:"index"`
	ReportedBy         uint   `gorm:"not null;index"`
	Description        string `gorm:"type:text;not null"`
	Severity           string `gorm:"size:20;not null;index"`
	Status             string `gorm:"size:20;not null;index"`
	ResolvedBy         *uint
	CorrectiveAction   string `gorm:"type:text"`
	ResolvedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (NonConformityModel) TableName() string {
	return constants.TableNonConformities
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&ProductModel{},
		&UserModel{},
		&ProductionRecordModel{},
		&QualityControlModel{},
		&DefectModel{},
		&AlertModel{},
		&CertificateModel{},
		&NonConformityModel{},
	}
}
