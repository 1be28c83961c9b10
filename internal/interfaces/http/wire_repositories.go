package http

import (
	"gorm.io/gorm"

	"github.com/polyforma/qualitrack/internal/domain/alert"
	"github.com/polyforma/qualitrack/internal/domain/certificate"
	"github.com/polyforma/qualitrack/internal/domain/nonconformity"
	"github.com/polyforma/qualitrack/internal/domain/production"
	"github.com/polyforma/qualitrack/internal/domain/quality"
	"github.com/polyforma/qualitrack/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	record        production.Repository
	quality       quality.Repository
	alert         alert.Repository
	certificate   certificate.Repository
	nonConformity nonconformity.Repository
	catalog       *repository.ProductCatalogRepository
	directory     *repository.UserDirectoryRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		record:        repository.NewProductionRecordRepository(db),
		quality:       repository.NewQualityControlRepository(db),
		alert:         repository.NewAlertRepository(db),
		certificate:   repository.NewCertificateRepository(db),
		nonConformity: repository.NewNonConformityRepository(db),
		catalog:       repository.NewProductCatalogRepository(db),
		directory:     repository.NewUserDirectoryRepository(db),
	}
}
