package mappers

import (
	"fmt"

	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/infrastructure/persistence/models"
	"github.com/polyforma/qualitrack/internal/shared/mapper"
)

type CertificateMapper interface {
	ToEntity(model *models.CertificateModel) (*certificate.Certificate, error)
	ToModel(entity *certificate.Certificate) *models.CertificateModel
	ToEntities(models []*models.CertificateModel) ([]*certificate.Certificate, error)
}

type CertificateMapperImpl struct{}

func NewCertificateMapper() CertificateMapper {
	return &CertificateMapperImpl{}
}

func (m *CertificateMapperImpl) ToEntity(model *models.CertificateModel) (*certificate.Certificate, error) {
	if model == nil {
		return nil, nil
	}

	status, err := certificate.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate status: %w", err)
	}

	entity, err := certificate.ReconstructCertificate(
		model.ID,
		model.Code,
		model.ProductID,
		model.ProductionRecordID,
		model.QualityControlID,
		model.RequestedBy,
		model.ApprovedBy,
		status,
		model.DocumentRef,
		model.ApprovedAt,
		model.RejectionReason,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct certificate %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *CertificateMapperImpl) ToModel(entity *certificate.Certificate) *models.CertificateModel {
	if entity == nil {
		return nil
	}
	return &models.CertificateModel{
		ID:                 entity.ID(),
		Code:               entity.Code(),
		ProductID:          entity.ProductID(),
		ProductionRecordID: entity.ProductionRecordID(),
		QualityControlID:   entity.QualityControlID(),
		RequestedBy:        entity.RequestedBy(),
		ApprovedBy:         entity.ApprovedBy(),
		Status:             entity.Status().String(),
		DocumentRef:        entity.DocumentRef(),
		ApprovedAt:         entity.ApprovedAt(),
		RejectionReason:    entity.RejectionReason(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}

func (m *CertificateMapperImpl) ToEntities(modelList []*models.CertificateModel) ([]*certificate.Certificate, error) {
	return mapper.MapSliceWithError(modelList, m.ToEntity)
}
