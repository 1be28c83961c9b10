package constants

const (
	TableProducts          = "products"
	TableUsers             = "users"
	TableProductionRecords = "production_records"
	TableQualityControls   = "quality_controls"
	TableDefects           = "defects"
	TableAlerts            = "alerts"
	TableCertificates      = "certificates"
	TableNonConformities   = "non_conformities"
)
