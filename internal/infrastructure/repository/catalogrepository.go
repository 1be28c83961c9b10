package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polyforma/qualitrack/internal/domain/catalog"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/db"
)

// ProductCatalogRepository reads the products table owned by catalog
// maintenance. Upsert exists for seeding only.
type ProductCatalogRepository struct {
	db *gorm.DB
}

func NewProductCatalogRepository(db *gorm.DB) *ProductCatalogRepository {
	return &ProductCatalogRepository{db: db}
}

func (r *ProductCatalogRepository) GetProduct(ctx context.Context, id uint) (*catalog.Product, error) {
	var model models.ProductModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID: %w", err)
	}

	return &catalog.Product{
		ID:             model.ID,
		Name:           model.Name,
		AlertThreshold: model.AlertThreshold,
	}, nil
}

// Upsert inserts or updates a product keyed by code.
func (r *ProductCatalogRepository) Upsert(ctx context.Context, model *models.ProductModel) error {
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "alert_threshold", "active", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert product %s: %w", model.Code, err)
	}
	return nil
}
