package mappers

import (
	"fmt"

	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type NonConformityMapper interface {
	ToEntity(model *models.NonConformityModel) (*nonconformity.NonConformity, error)
	ToModel(entity *nonconformity.NonConformity) *models.NonConformityModel
	ToEntities(models []*models.NonConformityModel) ([]*nonconformity.NonConformity, error)
}

type NonConformityMapperImpl struct{}

func NewNonConformityMapper() NonConformityMapper {
	return &NonConformityMapperImpl{}
}

func (m *NonConformityMapperImpl) ToEntity(model *models.NonConformityModel) (*nonconformity.NonConformity, error) {
	if model == nil {
		return nil, nil
	}

	severity, err := nonconformity.NewSeverity(model.Severity)
	if err != nil {
		return nil, fmt.Errorf("failed to create severity: %w", err)
	}
	status, err := nonconformity.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create non-conformity status: %w", err)
	}

	entity, err := nonconformity.ReconstructNonConformity(
		model.ID,
		model.Code,
		model.ProductID,
		model.ProductionRecordID,
		model.ReportedBy,
		model.Description,
		severity,
		status,
		model.ResolvedBy,
		model.CorrectiveAction,
		model.ResolvedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct non-conformity %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *NonConformityMapperImpl) ToModel(entity *nonconformity.NonConformity) *models.NonConformityModel {
	if entity == nil {
		return nil
	}
	return &models.NonConformityModel{
		ID:                 entity.ID(),
		Code:               entity.Code(),
		ProductID:          entity.ProductID(),
		ProductionRecordID: entity.ProductionRecordID(),
		ReportedBy:         entity.ReportedBy(),
		Description:        entity.Description(),
		Severity:           entity.Severity().String(),
		Status:             entity.Status().String(),
		ResolvedBy:         entity.ResolvedBy(),
		CorrectiveAction:   entity.CorrectiveAction(),
		ResolvedAt:         entity.ResolvedAt(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *NonConformityMapperImpl) ToEntities(modelList []*models.NonConformityModel) ([]*nonconformity.NonConformity, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
