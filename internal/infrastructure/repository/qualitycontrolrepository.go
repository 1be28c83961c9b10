package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/mappers"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/constants"
	"github.com/polyforma/qualitrack/internal/shared/db"
)

var qualityControlSortColumns = map[string]string{
	"created_at":       constants.TableQualityControls + ".created_at",
	"waste_percentage": constants.TableQualityControls + ".waste_percentage",
}

type QualityControlRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.QualityControlMapper
}

func NewQualityControlRepository(db *gorm.DB) quality.Repository {
	return &QualityControlRepositoryImpl{
		db:     db,
		mapper: mappers.NewQualityControlMapper(),
	}
}

// Create inserts the control and its defects in one transaction, joining the
// caller's transaction when there is one.
func (r *QualityControlRepositoryImpl) Create(ctx context.Context, qc *quality.QualityControl) error {
	model, err := r.mapper.ToModel(qc)
	if err != nil {
		return fmt.Errorf("failed to map quality control entity to model: %w", err)
	}

	defects := qc.Defects()
	var defectModels []*models.DefectModel

	err = db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Defects").Create(model).Error; err != nil {
			if db.IsUniqueViolation(err) {
				return quality.ErrAlreadyInspected
			}
			return fmt.Errorf("failed to create quality control: %w", err)
		}

		defectModels = r.mapper.ToDefectModels(model.ID, defects, model.CreatedAt)
		if len(defectModels) == 0 {
			return nil
		}
		if err := tx.Create(&defectModels).Error; err != nil {
			return fmt.Errorf("failed to create defects: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, d := range defects {
		d.Attach(defectModels[i].ID, model.ID)
	}
	if err := qc.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set quality control ID: %w", err)
	}
	return nil
}

func (r *QualityControlRepositoryImpl) GetByID(ctx context.Context, id uint) (*quality.QualityControl, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *QualityControlRepositoryImpl) GetByProductionRecordID(ctx context.Context, productionRecordID uint) (*quality.QualityControl, error) {
	return r.findOne(ctx, "production_record_id = ?", productionRecordID)
}

func (r *QualityControlRepositoryImpl) findOne(ctx context.Context, cond string, arg any) (*quality.QualityControl, error) {
	var model models.QualityControlModel

	err := db.GetTxFromContext(ctx, r.db).
		Preload("Defects", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Where(cond, arg).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, quality.ErrControlNotFound
		}
		return nil, fmt.Errorf("failed to get quality control: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *QualityControlRepositoryImpl) ExistsForProductionRecord(ctx context.Context, productionRecordID uint) (bool, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.QualityControlModel{}).
		Where("production_record_id = ?", productionRecordID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check quality control existence: %w", err)
	}
	return count > 0, nil
}

func (r *QualityControlRepositoryImpl) List(ctx context.Context, filter quality.Filter) ([]*quality.QualityControl, int64, error) {
	qc := constants.TableQualityControls
	pr := constants.TableProductionRecords

	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.QualityControlModel{}).
		Joins("JOIN " + pr + " ON " + pr + ".id = " + qc + ".production_record_id")

	if filter.ProductionRecordID != nil {
		query = query.Where(qc+".production_record_id = ?", *filter.ProductionRecordID)
	}
	if filter.ProductID != nil {
		query = query.Where(pr+".product_id = ?", *filter.ProductID)
	}
	if filter.LotNumber != "" {
		query = query.Where(pr+".lot_number LIKE ?", "%"+filter.LotNumber+"%")
	}
	if filter.Shift != "" {
		query = query.Where(pr+".shift = ?", filter.Shift)
	}
	if filter.Approved != nil {
		query = query.Where(qc+".approved = ?", *filter.Approved)
	}
	if filter.DateFrom != nil {
		query = query.Where(qc+".created_at >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		query = query.Where(qc+".created_at <= ?", *filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quality controls: %w", err)
	}

	var modelList []*models.QualityControlModel
	err := query.
		Select(qc + ".*").
		Preload("Defects", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Order(filter.OrderClause(qualityControlSortColumns, qc+".created_at")).
		Order(qc + ".id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list quality controls: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map quality control models to entities: %w", err)
	}
	return entities, total, nil
}
