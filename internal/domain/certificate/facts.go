package certificate

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentFacts is the complete, self-contained snapshot a certificate
// document is rendered from.
type DocumentFacts struct {
	Code        string
	IssuedAt    time.Time
	RequestedBy string
	ApprovedBy  string

	ProductID      uint
	ProductName    string
	AlertThreshold decimal.Decimal

	ProductionRecordID uint
	LotNumber          string
	ProductionDate     time.Time
	Shift              string
	ProductionLine     string
	TotalProduced      int
	TotalApproved      int
	TotalRejected      int

	QualityControlID uint
	InspectedAt      time.Time
	Weight           *decimal.Decimal
	Diameter         *decimal.Decimal
	Height           *decimal.Decimal
	Width            *decimal.Decimal
	WastePercentage  decimal.Decimal
	Approved         bool
	Notes            string
	Defects          []DefectFact

	// ExtraMeasurements is ordered by name.
	ExtraMeasurements []MeasurementFact
}

type DefectFact struct {
	Type        string
	Label       string
	Quantity    int
	Description string
}

type MeasurementFact struct {
	Name  string
	Value string
}
