package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/mappers"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/db"
)

var nonConformitySortColumns = map[string]string{
	"created_at": "created_at",
	"severity":   "severity",
	"status":     "status",
	"code":       "code",
}

type NonConformityRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NonConformityMapper
}

func NewNonConformityRepository(db *gorm.DB) nonconformity.Repository {
	return &NonConformityRepositoryImpl{
		db:     db,
		mapper: mappers.NewNonConformityMapper(),
	}
}

func (r *NonConformityRepositoryImpl) Create(ctx context.Context, n *nonconformity.NonConformity) error {
	model := r.mapper.ToModel(n)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return nonconformity.ErrCodeTaken
		}
		return fmt.Errorf("failed to create non-conformity: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set non-conformity ID: %w", err)
	}
	return nil
}

func (r *NonConformityRepositoryImpl) GetByID(ctx context.Context, id uint) (*nonconformity.NonConformity, error) {
	var model models.NonConformityModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nonconformity.ErrNonConformityNotFound
		}
		return nil, fmt.Errorf("failed to get non-conformity by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *NonConformityRepositoryImpl) List(ctx context.Context, filter nonconformity.Filter) ([]*nonconformity.NonConformity, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NonConformityModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Severity != nil {
		query = query.Where("severity = ?", filter.Severity.String())
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.ProductionRecordID != nil {
		query = query.Where("production_record_id = ?", *filter.ProductionRecordID)
	}
	if filter.ReportedBy != nil {
		query = query.Where("reported_by = ?", *filter.ReportedBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count non-conformities: %w", err)
	}

	var modelList []*models.NonConformityModel
	err := query.
		Order(filter.OrderClause(nonConformitySortColumns, "created_at")).
		Order("id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list non-conformities: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map non-conformity models to entities: %w", err)
	}
	return entities, total, nil
}

func (r *NonConformityRepositoryImpl) Update(ctx context.Context, n *nonconformity.NonConformity) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.NonConformityModel{}).
		Where("id = ?", n.ID()).
		Updates(map[string]any{
			"status":            n.Status().String(),
			"resolved_by":       n.ResolvedBy(),
			"corrective_action": n.CorrectiveAction(),
			"resolved_at":       n.ResolvedAt(),
			"updated_at":        n.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update non-conformity: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.NonConformityModel{}).Where("id = ?", n.ID()).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check non-conformity existence: %w", err)
	}
	if count == 0 {
		return nonconformity.ErrNonConformityNotFound
	}
	return nil
}
