package production

import (
	"fmt"
	"strings"
	"time"
)

// ProductionRecord is one dated, shifted manufacturing run of a single product.
type ProductionRecord struct {
	id             uint
	productID      uint
	operatorID     uint
	lotNumber      string
	productionDate time.Time
	shift          Shift
	productionLine string
	totalProduced  int
	totalApproved  int
	totalRejected  int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewProductionRecord(
	productID uint,
	operatorID uint,
	lotNumber string,
	productionDate time.Time,
	shift Shift,
	productionLine string,
	totalProduced, totalApproved, totalRejected int,
) (*ProductionRecord, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if operatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	lotNumber = strings.TrimSpace(lotNumber)
	if lotNumber == "" {
		return nil, fmt.Errorf("lot number is required")
	}
	if len(lotNumber) > 50 {
		return nil, fmt.Errorf("lot number exceeds maximum length of 50 characters")
	}
	if productionDate.IsZero() {
		return nil, fmt.Errorf("production date is required")
	}
	if !shift.IsValid() {
		return nil, fmt.Errorf("invalid shift: %s", shift)
	}
	if err := ValidateTotals(totalProduced, totalApproved, totalRejected); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &ProductionRecord{
		productID:      productID,
		operatorID:     operatorID,
		lotNumber:      lotNumber,
		productionDate: productionDate,
		shift:          shift,
		productionLine: strings.TrimSpace(productionLine),
		totalProduced:  totalProduced,
		totalApproved:  totalApproved,
		totalRejected:  totalRejected,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ValidateTotals enforces produced >= 1, non-negative counts and
// approved + rejected <= produced.
func ValidateTotals(produced, approved, rejected int) error {
	if produced < 1 {
		return fmt.Errorf("total produced must be at least 1")
	}
	if approved < 0 {
		return fmt.Errorf("total approved cannot be negative")
	}
	if rejected < 0 {
		return fmt.Errorf("total rejected cannot be negative")
	}
	if approved+rejected > produced {
		return ErrTotalsExceeded
	}
	return nil
}

func ReconstructProductionRecord(
	id uint,
	productID uint,
	operatorID uint,
	lotNumber string,
	productionDate time.Time,
	shift Shift,
	productionLine string,
	totalProduced, totalApproved, totalRejected int,
	createdAt, updatedAt time.Time,
) (*ProductionRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("production record ID cannot be zero")
	}
	if !shift.IsValid() {
		return nil, fmt.Errorf("invalid shift: %s", shift)
	}

	return &ProductionRecord{
		id:             id,
		productID:      productID,
		operatorID:     operatorID,
		lotNumber:      lotNumber,
		productionDate: productionDate,
		shift:          shift,
		productionLine: productionLine,
		totalProduced:  totalProduced,
		totalApproved:  totalApproved,
		totalRejected:  totalRejected,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *ProductionRecord) ID() uint                  { return r.id }
func (r *ProductionRecord) ProductID() uint           { return r.productID }
func (r *ProductionRecord) OperatorID() uint          { return r.operatorID }
func (r *ProductionRecord) LotNumber() string         { return r.lotNumber }
func (r *ProductionRecord) ProductionDate() time.Time { return r.productionDate }
func (r *ProductionRecord) Shift() Shift              { return r.shift }
func (r *ProductionRecord) ProductionLine() string    { return r.productionLine }
func (r *ProductionRecord) TotalProduced() int        { return r.totalProduced }
func (r *ProductionRecord) TotalApproved() int        { return r.totalApproved }
func (r *ProductionRecord) TotalRejected() int        { return r.totalRejected }
func (r *ProductionRecord) CreatedAt() time.Time      { return r.createdAt }
func (r *ProductionRecord) UpdatedAt() time.Time      { return r.updatedAt }

// DefaultApproval is the verdict used when an inspection does not state one.
func (r *ProductionRecord) DefaultApproval() bool {
	return r.totalApproved > r.totalRejected
}

func (r *ProductionRecord) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("production record ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("production record ID cannot be zero")
	}
	r.id = id
	return nil
}
