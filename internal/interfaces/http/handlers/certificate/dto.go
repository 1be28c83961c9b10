package certificate

type CreateCertificateRequest struct {
	ProductID          uint  `json:"product_id" binding:"required"`
	ProductionRecordID uint  `json:"production_record_id" binding:"required"`
	QualityControlID   *uint `json:"quality_control_id"`
}

type RejectCertificateRequest struct {
	Reason string `json:"reason" binding:"max=2000"`
}
