package quality

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalDefects sums defect quantities.
func TotalDefects(defects []*Defect) int {
	total := 0
	for _, d := range defects {
		total += d.Quantity()
	}
	return total
}

// SumDefects totals defect quantities, rejecting totals above MaxDefectQuantity
// so the sum can never wrap.
func SumDefects(defects []*Defect) (int, error) {
	total := 0
	for _, d := range defects {
		q := d.Quantity()
		if q < 0 || q > MaxDefectQuantity-total {
			return 0, fmt.Errorf("total defect quantity cannot exceed %d", MaxDefectQuantity)
		}
		total += q
	}
	return total, nil
}

// CalculateWastePercentage returns totalDefects/totalProduced*100 rounded to
// two decimals, or zero when nothing was produced.
func CalculateWastePercentage(totalDefects, totalProduced int) decimal.Decimal {
	if totalProduced <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(totalDefects)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(totalProduced))).
		Round(2)
}
