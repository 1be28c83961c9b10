package alert

import "github.com/shopspring/decimal"

// ThresholdFor picks the product threshold, falling back to the system default.
func ThresholdFor(productThreshold *decimal.Decimal, systemDefault decimal.Decimal) decimal.Decimal {
	if productThreshold != nil {
		return *productThreshold
	}
	return systemDefault
}

// Exceeds reports whether waste is strictly above threshold.
func Exceeds(waste, threshold decimal.Decimal) bool {
	return waste.GreaterThan(threshold)
}
