package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/polyforma/qualitrack/internal/shared/constants"
)

// ProductModel is the catalog row the quality engine reads. Catalog
// maintenance happens outside this service; the seed command fills it locally.
type ProductModel struct {
	ID             uint             `gorm:"primaryKey"`
	Code           string           `gorm:"size:50;not null;uniqueIndex:uk_products_code"`
	Name           string           `gorm:"size:200;not null"`
	AlertThreshold *decimal.Decimal `gorm:"type:decimal(7,2)"`
	Active         bool             `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}
