package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/polyforma/qualitrack/internal/domain/directory"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/db"
)

// UserDirectoryRepository reads users provisioned by the identity provider.
type UserDirectoryRepository struct {
	db *gorm.DB
}

func NewUserDirectoryRepository(db *gorm.DB) *UserDirectoryRepository {
	return &UserDirectoryRepository{db: db}
}

func (r *UserDirectoryRepository) GetUser(ctx context.Context, id uint) (*directory.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, directory.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return toDirectoryUser(&model), nil
}

func (r *UserDirectoryRepository) ListActiveByRoles(ctx context.Context, roles ...string) ([]*directory.User, error) {
	if len(roles) == 0 {
		return []*directory.User{}, nil
	}

	var modelList []*models.UserModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ? AND role IN ?", true, roles).
		Order("id ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}

	users := make([]*directory.User, 0, len(modelList))
	for _, m := range modelList {
		users = append(users, toDirectoryUser(m))
	}
	return users, nil
}

// Upsert inserts or updates a user keyed by email.
func (r *UserDirectoryRepository) Upsert(ctx context.Context, model *models.UserModel) error {
	err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "role", "active", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", model.Email, err)
	}
	return nil
}

func toDirectoryUser(m *models.UserModel) *directory.User {
	return &directory.User{
		ID:     m.ID,
		Name:   m.Name,
		Email:  m.Email,
		Role:   m.Role,
		Active: m.Active,
	}
}
