package http

import (
	alertUsecases "github.com/polyforma/qualitrack/internal/application/alert/usecases"
	certificateUsecases "github.com/polyforma/qualitrack/internal/application/certificate/usecases"
	nonconformityUsecases "github.com/polyforma/qualitrack/internal/application/nonconformity/usecases"
	productionUsecases "github.com/polyforma/qualitrack/internal/application/production/usecases"
	qualityUsecases "github.com/polyforma/qualitrack/internal/application/quality/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Production
	createRecordUC *productionUsecases.CreateProductionRecordUseCase
	getRecordUC    *productionUsecases.GetProductionRecordUseCase
	listRecordsUC  *productionUsecases.ListProductionRecordsUseCase

	// Quality
	submitQualityUC *qualityUsecases.SubmitQualityControlUseCase
	getQualityUC    *qualityUsecases.GetQualityControlUseCase
	listQualityUC   *qualityUsecases.ListQualityControlsUseCase

	// Alert
	listAlertsUC   *alertUsecases.ListAlertsUseCase
	getAlertUC     *alertUsecases.GetAlertUseCase
	resolveAlertUC *alertUsecases.ResolveAlertUseCase
	dismissAlertUC *alertUsecases.DismissAlertUseCase

	// Certificate
	createCertificateUC   *certificateUsecases.CreateCertificateUseCase
	approveCertificateUC  *certificateUsecases.ApproveCertificateUseCase
	rejectCertificateUC   *certificateUsecases.RejectCertificateUseCase
	getCertificateUC      *certificateUsecases.GetCertificateUseCase
	listCertificatesUC    *certificateUsecases.ListCertificatesUseCase
	downloadCertificateUC *certificateUsecases.DownloadCertificateUseCase

	// Non-conformity
	createNonConformityUC    *nonconformityUsecases.CreateNonConformityUseCase
	getNonConformityUC       *nonconformityUsecases.GetNonConformityUseCase
	listNonConformitiesUC    *nonconformityUsecases.ListNonConformitiesUseCase
	resolveNonConformityUC   *nonconformityUsecases.ResolveNonConformityUseCase
	setNonConformityStatusUC *nonconformityUsecases.SetNonConformityStatusUseCase
}

func (c *Container) initUseCases() {
	attempts := c.cfg.Quality.CodeRetryAttempts
	r := c.repos

	c.ucs = &allUseCases{
		createRecordUC: productionUsecases.NewCreateProductionRecordUseCase(r.record, c.catalog, c.log),
		getRecordUC:    productionUsecases.NewGetProductionRecordUseCase(r.record, c.log),
		listRecordsUC:  productionUsecases.NewListProductionRecordsUseCase(r.record, c.log),

		submitQualityUC: qualityUsecases.NewSubmitQualityControlUseCase(r.record, r.quality, c.catalog, c.trigger, c.txManager, c.log),
		getQualityUC:    qualityUsecases.NewGetQualityControlUseCase(r.quality, c.log),
		listQualityUC:   qualityUsecases.NewListQualityControlsUseCase(r.quality, c.log),

		listAlertsUC:   alertUsecases.NewListAlertsUseCase(r.alert, c.log),
		getAlertUC:     alertUsecases.NewGetAlertUseCase(r.alert, c.log),
		resolveAlertUC: alertUsecases.NewResolveAlertUseCase(r.alert, c.log),
		dismissAlertUC: alertUsecases.NewDismissAlertUseCase(r.alert, c.log),

		createCertificateUC: certificateUsecases.NewCreateCertificateUseCase(r.certificate, r.record, r.quality, c.certCodes, attempts, c.log),
		approveCertificateUC: certificateUsecases.NewApproveCertificateUseCase(
			r.certificate,
			r.record,
			r.quality,
			c.catalog,
			r.directory,
			c.documents,
			c.dispatcher,
			c.threshold,
			c.log,
		),
		rejectCertificateUC:   certificateUsecases.NewRejectCertificateUseCase(r.certificate, c.log),
		getCertificateUC:      certificateUsecases.NewGetCertificateUseCase(r.certificate, c.log),
		listCertificatesUC:    certificateUsecases.NewListCertificatesUseCase(r.certificate, c.log),
		downloadCertificateUC: certificateUsecases.NewDownloadCertificateUseCase(r.certificate, c.documents, c.log),

		createNonConformityUC:    nonconformityUsecases.NewCreateNonConformityUseCase(r.nonConformity, r.record, c.catalog, c.ncCodes, attempts, c.log),
		getNonConformityUC:       nonconformityUsecases.NewGetNonConformityUseCase(r.nonConformity, c.log),
		listNonConformitiesUC:    nonconformityUsecases.NewListNonConformitiesUseCase(r.nonConformity, c.log),
		resolveNonConformityUC:   nonconformityUsecases.NewResolveNonConformityUseCase(r.nonConformity, c.log),
		setNonConformityStatusUC: nonconformityUsecases.NewSetNonConformityStatusUseCase(r.nonConformity, c.log),
	}
}
