package nonconformity

import (
	"fmt"
	"strings"
	"time"
)

// NonConformity is a quality incident, optionally tied to a product or lot.
type NonConformity struct {
	id                 uint
	code               string
	productID          *uint
	productionRecordID *uint
	reportedBy         uint
	description        string
	severity           Severity
	status             Status
	resolvedBy         *uint
	correctiveAction   string
	resolvedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

func NewNonConformity(
	code string,
	description string,
	severity Severity,
	productID *uint,
	productionRecordID *uint,
	reportedBy uint,
) (*NonConformity, error) {
	if code == "" {
		return nil, fmt.Errorf("non-conformity code is required")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity: %s", severity)
	}
	if reportedBy == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	now := time.Now().UTC()
	return &NonConformity{
		code:               code,
		productID:          productID,
		productionRecordID: productionRecordID,
		reportedBy:         reportedBy,
		description:        description,
		severity:           severity,
		status:             StatusOpen,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructNonConformity(
	id uint,
	code string,
	productID *uint,
	productionRecordID *uint,
	reportedBy uint,
	description string,
	severity Severity,
	status Status,
	resolvedBy *uint,
	correctiveAction string,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*NonConformity, error) {
	if id == 0 {
		return nil, fmt.Errorf("non-conformity ID cannot be zero")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity: %s", severity)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid non-conformity status: %s", status)
	}
	return &NonConformity{
		id:                 id,
		code:               code,
		productID:          productID,
		productionRecordID: productionRecordID,
		reportedBy:         reportedBy,
		description:        description,
		severity:           severity,
		status:             status,
		resolvedBy:         resolvedBy,
		correctiveAction:   correctiveAction,
		resolvedAt:         resolvedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (n *NonConformity) ID() uint                  { return n.id }
func (n *NonConformity) Code() string              { return n.code }
func (n *NonConformity) ProductID() *uint          { return n.productID }
func (n *NonConformity) ProductionRecordID() *uint { return n.productionRecordID }
func (n *NonConformity) ReportedBy() uint          { return n.reportedBy }
func (n *NonConformity) Description() string       { return n.description }
func (n *NonConformity) Severity() Severity        { return n.severity }
func (n *NonConformity) Status() Status            { return n.status }
func (n *NonConformity) ResolvedBy() *uint         { return n.resolvedBy }
func (n *NonConformity) CorrectiveAction() string  { return n.correctiveAction }
func (n *NonConformity) ResolvedAt() *time.Time    { return n.resolvedAt }
func (n *NonConformity) CreatedAt() time.Time      { return n.createdAt }
func (n *NonConformity) UpdatedAt() time.Time      { return n.updatedAt }

func (n *NonConformity) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("non-conformity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("non-conformity ID cannot be zero")
	}
	n.id = id
	return nil
}

func (n *NonConformity) RegenerateCode(code string) error {
	if n.id != 0 {
		return fmt.Errorf("cannot change the code of a stored non-conformity")
	}
	if code == "" {
		return fmt.Errorf("non-conformity code is required")
	}
	n.code = code
	return nil
}

// Resolve forces the status to resuelta from any state.
func (n *NonConformity) Resolve(resolverID uint, correctiveAction string, at time.Time) error {
	if resolverID == 0 {
		return fmt.Errorf("resolver ID is required")
	}
	correctiveAction = strings.TrimSpace(correctiveAction)
	if correctiveAction == "" {
		return fmt.Errorf("corrective action is required")
	}

	at = at.UTC()
	if err := n.applyStatus(StatusResolved, at); err != nil {
		return err
	}
	n.resolvedBy = &resolverID
	n.correctiveAction = correctiveAction
	n.resolvedAt = &at
	return nil
}

// SetStatus overwrites the status with any valid value.
func (n *NonConformity) SetStatus(status Status, at time.Time) error {
	return n.applyStatus(status, at.UTC())
}

// applyStatus is the single place every status change goes through.
// Transitions are deliberately unrestricted here.
func (n *NonConformity) applyStatus(next Status, at time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("invalid non-conformity status: %s", next)
	}
	n.status = next
	n.updatedAt = at
	return nil
}
