package mappers

import (
	"fmt"

	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type ProductionRecordMapper interface {
	ToEntity(model *models.ProductionRecordModel) (*production.ProductionRecord, error)
	ToModel(entity *production.ProductionRecord) *models.ProductionRecordModel
	ToEntities(models []*models.ProductionRecordModel) ([]*production.ProductionRecord, error)
}

type ProductionRecordMapperImpl struct{}

func NewProductionRecordMapper() ProductionRecordMapper {
	return &ProductionRecordMapperImpl{}
}

func (m *ProductionRecordMapperImpl) ToEntity(model *models.ProductionRecordModel) (*production.ProductionRecord, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := production.ReconstructProductionRecord(
		model.ID,
		model.ProductID,
		model.OperatorID,
		model.LotNumber,
		model.ProductionDate,
		production.Shift(model.Shift),
		model.ProductionLine,
		model.TotalProduced,
		model.TotalApproved,
		model.TotalRejected,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct production record %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *ProductionRecordMapperImpl) ToModel(entity *production.ProductionRecord) *models.ProductionRecordModel {
	if entity == nil {
		return nil
	}
	return &models.ProductionRecordModel{
		ID:             entity.ID(),
		ProductID:      entity.ProductID(),
		OperatorID:     entity.OperatorID(),
		LotNumber:      entity.LotNumber(),
		ProductionDate: entity.ProductionDate(),
		Shift:          entity.Shift().String(),
		ProductionLine: entity.ProductionLine(),
		TotalProduced:  entity.TotalProduced(),
		TotalApproved:  entity.TotalApproved(),
		TotalRejected:  entity.TotalRejected(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}

func (m *ProductionRecordMapperImpl) ToEntities(modelList []*models.ProductionRecordModel) ([]*production.ProductionRecord, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
