package quality

import (
	"fmt"
	"strings"
	"time"
)

// MaxDefectQuantity bounds a single defect row and the total of an inspection.
const MaxDefectQuantity = 1_000_000_000

// Defect is an immutable tally of one defect type found during an inspection.
type Defect struct {
	id               uint
	qualityControlID uint
	defectType       DefectType
	quantity         int
	description      string
	createdAt        time.Time
}

func NewDefect(defectType DefectType, quantity int, description string) (*Defect, error) {
	if !defectType.IsValid() {
		return nil, fmt.Errorf("invalid defect type: %s", defectType)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("defect quantity cannot be negative")
	}
	if quantity > MaxDefectQuantity {
		return nil, fmt.Errorf("defect quantity cannot exceed %d", MaxDefectQuantity)
	}
	description = strings.TrimSpace(description)
	if len(description) > 500 {
		return nil, fmt.Errorf("defect description exceeds maximum length of 500 characters")
	}

	return &Defect{
		defectType:  defectType,
		quantity:    quantity,
		description: description,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructDefect(
	id, qualityControlID uint,
	defectType DefectType,
	quantity int,
	description string,
	createdAt time.Time,
) *Defect {
	return &Defect{
		id:               id,
		qualityControlID: qualityControlID,
		defectType:       defectType,
		quantity:         quantity,
		description:      description,
		createdAt:        createdAt,
	}
}

func (d *Defect) ID() uint               { return d.id }
func (d *Defect) QualityControlID() uint { return d.qualityControlID }
func (d *Defect) DefectType() DefectType { return d.defectType }
func (d *Defect) Quantity() int          { return d.quantity }
func (d *Defect) Description() string    { return d.description }
func (d *Defect) CreatedAt() time.Time   { return d.createdAt }

// Attach binds the defect to its persisted control. Only the repository calls this.
func (d *Defect) Attach(id, qualityControlID uint) {
	d.id = id
	d.qualityControlID = qualityControlID
}
