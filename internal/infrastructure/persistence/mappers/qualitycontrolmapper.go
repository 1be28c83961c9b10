package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type QualityControlMapper interface {
	ToEntity(model *models.QualityControlModel) (*quality.QualityControl, error)
	ToModel(entity *quality.QualityControl) (*models.QualityControlModel, error)
	ToDefectModels(qualityControlID uint, defects []*quality.Defect, createdAt time.Time) []*models.DefectModel
	ToEntities(models []*models.QualityControlModel) ([]*quality.QualityControl, error)
}

type QualityControlMapperImpl struct{}

func NewQualityControlMapper() QualityControlMapper {
	return &QualityControlMapperImpl{}
}

func (m *QualityControlMapperImpl) ToEntity(model *models.QualityControlModel) (*quality.QualityControl, error) {
	if model == nil {
		return nil, nil
	}

	var extra map[string]any
	if len(model.ExtraMeasurements) > 0 {
		if err := json.Unmarshal(model.ExtraMeasurements, &extra); err != nil {
			return nil, fmt.Errorf("failed to decode extra measurements of quality control %d: %w", model.ID, err)
		}
	}

	defects := make([]*quality.Defect, 0, len(model.Defects))
	for _, d := range model.Defects {
		defects = append(defects, quality.ReconstructDefect(
			d.ID,
			d.QualityControlID,
			quality.DefectType(d.DefectType),
			d.Quantity,
			d.Description,
			d.CreatedAt,
		))
	}

	entity, err := quality.ReconstructQualityControl(
		model.ID,
		model.ProductionRecordID,
		model.InspectorID,
		quality.Measurements{
			Weight:   model.Weight,
			Diameter: model.Diameter,
			Height:   model.Height,
			Width:    model.Width,
			Extra:    extra,
		},
		model.WastePercentage,
		model.Approved,
		model.Notes,
		defects,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct quality control %d: %w", model.ID, err)
	}
	return entity, nil
}

// ToModel maps the control row only. Defects need the control ID and are
// mapped with ToDefectModels after insert.
func (m *QualityControlMapperImpl) ToModel(entity *quality.QualityControl) (*models.QualityControlModel, error) {
	if entity == nil {
		return nil, nil
	}

	measurements := entity.Measurements()
	var extra datatypes.JSON
	if len(measurements.Extra) > 0 {
		raw, err := json.Marshal(measurements.Extra)
		if err != nil {
			return nil, fmt.Errorf("failed to encode extra measurements: %w", err)
		}
		extra = datatypes.JSON(raw)
	}

	return &models.QualityControlModel{
		ID:                 entity.ID(),
		ProductionRecordID: entity.ProductionRecordID(),
		InspectorID:        entity.InspectorID(),
		Weight:             measurements.Weight,
		Diameter:           measurements.Diameter,
		Height:             measurements.Height,
		Width:              measurements.Width,
		ExtraMeasurements:  extra,
		WastePercentage:    entity.WastePercentage(),
		Approved:           entity.Approved(),
		Notes:              entity.Notes(),
		CreatedAt:          entity.CreatedAt(),
	}, nil
}

func (m *QualityControlMapperImpl) ToDefectModels(qualityControlID uint, defects []*quality.Defect, createdAt time.Time) []*models.DefectModel {
	out := make([]*models.DefectModel, 0, len(defects))
	for _, d := range defects {
		out = append(out, &models.DefectModel{
			QualityControlID: qualityControlID,
			DefectType:       d.DefectType().String(),
			Quantity:         d.Quantity(),
			Description:      d.Description(),
			CreatedAt:        createdAt,
		})
	}
	return out
}

func (m *QualityControlMapperImpl) ToEntities(modelList []*models.QualityControlModel) ([]*quality.QualityControl, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
