package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/mappers"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/db"
)

var alertSortColumns = map[string]string{
	"created_at":   "created_at",
	"actual_value": "actual_value",
	"status":       "status",
}

type AlertRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AlertMapper
}

func NewAlertRepository(db *gorm.DB) alert.Repository {
	return &AlertRepositoryImpl{
		db:     db,
		mapper: mappers.NewAlertMapper(),
	}
}

func (r *AlertRepositoryImpl) Create(ctx context.Context, a *alert.Alert) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set alert ID: %w", err)
	}
	return nil
}

func (r *AlertRepositoryImpl) GetByID(ctx context.Context, id uint) (*alert.Alert, error) {
	var model models.AlertModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, alert.ErrAlertNotFound
		}
		return nil, fmt.Errorf("failed to get alert by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AlertRepositoryImpl) List(ctx context.Context, filter alert.Filter) ([]*alert.Alert, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AlertModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.ProductionRecordID != nil {
		query = query.Where("production_record_id = ?", *filter.ProductionRecordID)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count alerts: %w", err)
	}

	var modelList []*models.AlertModel
	err := query.
		Order(filter.OrderClause(alertSortColumns, "created_at")).
		Order("id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list alerts: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map alert models to entities: %w", err)
	}
	return entities, total, nil
}

// SaveClosure is a compare-and-set on status so two concurrent closures
// cannot both win.
func (r *AlertRepositoryImpl) SaveClosure(ctx context.Context, a *alert.Alert) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.AlertModel{}).
		Where("id = ? AND status = ?", a.ID(), alert.StatusActive.String()).
		Updates(map[string]any{
			"status":           a.Status().String(),
			"resolved_by":      a.ResolvedBy(),
			"resolved_at":      a.ResolvedAt(),
			"resolution_notes": a.ResolutionNotes(),
			"updated_at":       a.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to close alert: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.AlertModel{}).Where("id = ?", a.ID()).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check alert existence: %w", err)
	}
	if count == 0 {
		return alert.ErrAlertNotFound
	}
	return alert.ErrNotActive
}

func (r *AlertRepositoryImpl) MarkEmailSent(ctx context.Context, id uint) error {
	// MySQL reports zero affected rows for an unchanged flag, so a repeat
	// call is not an error.
	result := db.GetTxFromContext(ctx, r.db).Model(&models.AlertModel{}).
		Where("id = ?", id).
		UpdateColumn("email_sent", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark alert email sent: %w", result.Error)
	}
	return nil
}
