package mappers

import (
	"fmt"

	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type AlertMapper interface {
	ToEntity(model *models.AlertModel) (*alert.Alert, error)
	ToModel(entity *alert.Alert) *models.AlertModel
	ToEntities(models []*models.AlertModel) ([]*alert.Alert, error)
}

type AlertMapperImpl struct{}

func NewAlertMapper() AlertMapper {
	return &AlertMapperImpl{}
}

func (m *AlertMapperImpl) ToEntity(model *models.AlertModel) (*alert.Alert, error) {
	if model == nil {
		return nil, nil
	}

	status, err := alert.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert status: %w", err)
	}

	entity, err := alert.ReconstructAlert(
		model.ID,
		model.ProductID,
		model.ProductionRecordID,
		model.QualityControlID,
		model.AlertType,
		model.Threshold,
		model.ActualValue,
		status,
		model.ResolvedBy,
		model.ResolvedAt,
		model.ResolutionNotes,
		model.EmailSent,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct alert %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *AlertMapperImpl) ToModel(entity *alert.Alert) *models.AlertModel {
	if entity == nil {
		return nil
	}
	return &models.AlertModel{
		ID:                 entity.ID(),
		ProductID:          entity.ProductID(),
		ProductionRecordID: entity.ProductionRecordID(),
		QualityControlID:   entity.QualityControlID(),
		AlertType:          entity.AlertType(),
		Threshold:          entity.Threshold(),
		ActualValue:        entity.ActualValue(),
		Status:             entity.Status().String(),
		ResolvedBy:         entity.ResolvedBy(),
		ResolvedAt:         entity.ResolvedAt(),
		ResolutionNotes:    entity.ResolutionNotes(),
		EmailSent:          entity.EmailSent(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *AlertMapperImpl) ToEntities(modelList []*models.AlertModel) ([]*alert.Alert, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
