package certificate

import (
	"fmt"
	"strings"
	"time"
)

// Certificate attests the quality of one production record. It moves from
// pendiente to aprobado or rechazado exactly once.
type Certificate struct {
	id                 uint
	code               string
	productID          uint
	productionRecordID uint
	qualityControlID   *uint
	requestedBy        uint
	approvedBy         *uint
	status             Status
	documentRef        *string
	approvedAt         *time.Time
	rejectionReason    string
	createdAt          time.Time
	updatedAt          time.Time
}

func NewCertificate(
	code string,
	productID uint,
	productionRecordID uint,
	qualityControlID *uint,
	requestedBy uint,
) (*Certificate, error) {
	if code == "" {
		return nil, fmt.Errorf("certificate code is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if productionRecordID == 0 {
		return nil, fmt.Errorf("production record ID is required")
	}
	if requestedBy == 0 {
		return nil, fmt.Errorf("requester ID is required")
	}

	now := time.Now().UTC()
	return &Certificate{
		code:               code,
		productID:          productID,
		productionRecordID: productionRecordID,
		qualityControlID:   qualityControlID,
		requestedBy:        requestedBy,
		status:             StatusPending,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructCertificate(
	id uint,
	code string,
	productID uint,
	productionRecordID uint,
	qualityControlID *uint,
	requestedBy uint,
	approvedBy *uint,
	status Status,
	documentRef *string,
	approvedAt *time.Time,
	rejectionReason string,
	createdAt, updatedAt time.Time,
) (*Certificate, error) {
	if id == 0 {
		return nil, fmt.Errorf("certificate ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid certificate status: %s", status)
	}
	return &Certificate{
		id:                 id,
		code:               code,
		productID:          productID,
		productionRecordID: productionRecordID,
		qualityControlID:   qualityControlID,
		requestedBy:        requestedBy,
		approvedBy:         approvedBy,
		status:             status,
		documentRef:        documentRef,
		approvedAt:         approvedAt,
		rejectionReason:    rejectionReason,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (c *Certificate) ID() uint                 { return c.id }
func (c *Certificate) Code() string             { return c.code }
func (c *Certificate) ProductID() uint          { return c.productID }
func (c *Certificate) ProductionRecordID() uint { return c.productionRecordID }
func (c *Certificate) QualityControlID() *uint  { return c.qualityControlID }
func (c *Certificate) RequestedBy() uint        { return c.requestedBy }
func (c *Certificate) ApprovedBy() *uint        { return c.approvedBy }
func (c *Certificate) Status() Status           { return c.status }
func (c *Certificate) DocumentRef() *string     { return c.documentRef }
func (c *Certificate) ApprovedAt() *time.Time   { return c.approvedAt }
func (c *Certificate) RejectionReason() string  { return c.rejectionReason }
func (c *Certificate) CreatedAt() time.Time     { return c.createdAt }
func (c *Certificate) UpdatedAt() time.Time     { return c.updatedAt }

func (c *Certificate) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("certificate ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("certificate ID cannot be zero")
	}
	c.id = id
	return nil
}

// RegenerateCode replaces the code of an unsaved certificate after a collision.
func (c *Certificate) RegenerateCode(code string) error {
	if c.id != 0 {
		return fmt.Errorf("cannot change the code of a stored certificate")
	}
	if code == "" {
		return fmt.Errorf("certificate code is required")
	}
	c.code = code
	return nil
}

// EnsurePending fails with ErrNotPending once the certificate has been decided.
func (c *Certificate) EnsurePending() error {
	if !c.status.IsPending() {
		return ErrNotPending
	}
	return nil
}

func (c *Certificate) Approve(approverID uint, documentRef string, at time.Time) error {
	if err := c.EnsurePending(); err != nil {
		return err
	}
	if approverID == 0 {
		return fmt.Errorf("approver ID is required")
	}
	if documentRef == "" {
		return fmt.Errorf("document reference is required to approve")
	}

	at = at.UTC()
	c.status = StatusApproved
	c.approvedBy = &approverID
	c.documentRef = &documentRef
	c.approvedAt = &at
	c.updatedAt = at
	return nil
}

func (c *Certificate) Reject(approverID uint, reason string, at time.Time) error {
	if err := c.EnsurePending(); err != nil {
		return err
	}
	if approverID == 0 {
		return fmt.Errorf("approver ID is required")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("rejection reason is required")
	}

	c.status = StatusRejected
	c.approvedBy = &approverID
	c.rejectionReason = reason
	c.updatedAt = at.UTC()
	return nil
}

// DownloadableRef returns the stored document reference when the certificate
// may be downloaded.
func (c *Certificate) DownloadableRef() (string, error) {
	if c.status != StatusApproved {
		return "", ErrNotApproved
	}
	if c.documentRef == nil || *c.documentRef == "" {
		return "", ErrDocumentMissing
	}
	return *c.documentRef, nil
}
