package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/mappers"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/db"
)

var certificateSortColumns = map[string]string{
	"created_at":  "created_at",
	"approved_at": "approved_at",
	"code":        "code",
	"status":      "status",
}

type CertificateRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CertificateMapper
}

func NewCertificateRepository(db *gorm.DB) certificate.Repository {
	return &CertificateRepositoryImpl{
		db:     db,
		mapper: mappers.NewCertificateMapper(),
	}
}

func (r *CertificateRepositoryImpl) Create(ctx context.Context, c *certificate.Certificate) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return certificate.ErrCodeTaken
		}
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set certificate ID: %w", err)
	}
	return nil
}

func (r *CertificateRepositoryImpl) GetByID(ctx context.Context, id uint) (*certificate.Certificate, error) {
	var model models.CertificateModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, certificate.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("failed to get certificate by ID: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CertificateRepositoryImpl) List(ctx context.Context, filter certificate.Filter) ([]*certificate.Certificate, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.CertificateModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ProductID != nil {
		query = query.Where("product_id = ?", *filter.ProductID)
	}
	if filter.ProductionRecordID != nil {
		query = query.Where("production_record_id = ?", *filter.ProductionRecordID)
	}
	if filter.RequestedBy != nil {
		query = query.Where("requested_by = ?", *filter.RequestedBy)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count certificates: %w", err)
	}

	var modelList []*models.CertificateModel
	err := query.
		Order(filter.OrderClause(certificateSortColumns, "created_at")).
		Order("id DESC").
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list certificates: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map certificate models to entities: %w", err)
	}
	return entities, total, nil
}

// SaveDecision only updates a row that is still pendiente, so of two
// concurrent approvers exactly one succeeds.
func (r *CertificateRepositoryImpl) SaveDecision(ctx context.Context, c *certificate.Certificate) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.CertificateModel{}).
		Where("id = ? AND status = ?", c.ID(), certificate.StatusPending.String()).
		Updates(map[string]any{
			"status":           c.Status().String(),
			"approved_by":      c.ApprovedBy(),
			"approved_at":      c.ApprovedAt(),
			"document_ref":     c.DocumentRef(),
			"rejection_reason": c.RejectionReason(),
			"updated_at":       c.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to save certificate decision: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := tx.Model(&models.CertificateModel{}).Where("id = ?", c.ID()).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check certificate existence: %w", err)
	}
	if count == 0 {
		return certificate.ErrCertificateNotFound
	}
	return certificate.ErrNotPending
}
