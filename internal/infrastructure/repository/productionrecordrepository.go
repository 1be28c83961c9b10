package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/mappers"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/db"
)

var productionRecordSortColumns = map[string]string{
	"production_date": "production_date",
	"lot_number":      "lot_number",
	"total_produced":  "total_produced",
	"created_at":      "created_at",
}

type ProductionRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductionRecordMapper
}

func NewProductionRecordRepository(db *gorm.DB) production.Repository {
	return &ProductionRecordRepositoryImpl{
		db:     db,
		mapper: mappers.NewProductionRecordMapper(),
	}
}

func (r *ProductionRecordRepositoryImpl) Create(ctx context.Context, record *production.ProductionRecord) error {
	model := r.mapper.ToModel(record)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create production record: %w", err)
	}

	if err := record.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set production record ID: %w", err)
	}
	return nil
}

func (r *ProductionRecordRepositoryImpl) GetByID(ctx context.Context, id uint) (*production.ProductionRecord, error) {
	var model models.ProductionRecordModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, production.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get production record by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ProductionRecordRepositoryImpl) List(ctx context.Context, filter production.Filter) ([]*production.ProductionRecord, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductionRecordModel{})

	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.LotNumber != "" {
		query = query.Where("lot_number LIKE ?", "%"+filter.LotNumber+"%")
	}
	if filter.DateFrom != nil {
		query = query.Where("production_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where("production_date <= ?", *filter.DateTo)
	}
	if filter.Shift != nil {
		query = query.Where("shift = ?", filter.Shift.String())
	}
	if filter.HasInspection != nil {
		inspected := r.db.Session(&gorm.Session{NewDB: true}).
			Table(constants.TableQualityControls).
			Select("1").
			Where(constants.TableQualityControls + ".production_record_id = " + constants.TableProductionRecords + ".id")
		if *filter.HasInspection {
			query = query.Where("EXISTS (?)", inspected)
		} else {
			query = query.Where("NOT EXISTS (?)", inspected)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count production records: %w", err)
	}

	var modelList []*models.ProductionRecordModel
	err := query.
		Order(filter.OrderClause(productionRecordSortColumns, "production_date")).
		Order("id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list production records: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map production record models to entities: %w", err)
	}
	return entities, total, nil
}
