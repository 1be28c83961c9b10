package quality

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDefect(t *testing.T, dt DefectType, qty int) *Defect {
	t.Helper()
	d, err := NewDefect(dt, qty, "")
	require.NoError(t, err)
	return d
}

func TestCalculateWastePercentage(t *testing.T) {
	tests := []struct {
		name     string
		defects  int
		produced int
		want     string
	}{
		{"five percent", 50, 1000, "5"},
		{"six percent", 60, 1000, "6"},
		{"rounds half up", 1, 3, "33.33"},
		{"two thirds", 2, 3, "66.67"},
		{"no defects", 0, 500, "0"},
		{"zero produced", 10, 0, "0"},
		{"just above five", 501, 10000, "5.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateWastePercentage(tt.defects, tt.produced)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestNewQualityControl_ComputesWaste(t *testing.T) {
	defects := []*Defect{mustDefect(t, DefectStain, 30), mustDefect(t, DefectScratch, 20)}

	qc, err := NewQualityControl(7, 2, 1000, Measurements{}, true, "ok", defects)

	require.NoError(t, err)
	assert.Equal(t, "5.00", qc.WastePercentage().StringFixed(2))
	assert.Equal(t, 50, qc.TotalDefects())
	assert.Len(t, qc.Defects(), 2)
}

func TestNewQualityControl_NoDefects(t *testing.T) {
	qc, err := NewQualityControl(7, 2, 1000, Measurements{}, false, "", nil)

	require.NoError(t, err)
	assert.True(t, qc.WastePercentage().IsZero())
	assert.NotNil(t, qc.Defects())
	assert.Empty(t, qc.Defects())
}

func TestNewQualityControl_RejectsNegativeMeasurement(t *testing.T) {
	w := decimal.NewFromFloat(-1.5)
	_, err := NewQualityControl(7, 2, 1000, Measurements{Weight: &w}, true, "", nil)

	assert.ErrorContains(t, err, "weight cannot be negative")
}

func TestMeasurements_AreCopied(t *testing.T) {
	extra := map[string]any{"color": "azul"}
	qc, err := NewQualityControl(7, 2, 10, Measurements{Extra: extra}, true, "", nil)
	require.NoError(t, err)

	extra["color"] = "rojo"
	m := qc.Measurements()
	m.Extra["color"] = "verde"

	assert.Equal(t, "azul", qc.Measurements().Extra["color"])
}

func TestNewDefect_Validation(t *testing.T) {
	_, err := NewDefect(DefectType("grieta"), 1, "")
	assert.Error(t, err)

	_, err = NewDefect(DefectFlash, -1, "")
	assert.Error(t, err)

	d, err := NewDefect(DefectFlash, 0, "  borde  ")
	require.NoError(t, err)
	assert.Equal(t, "borde", d.Description())
	assert.Equal(t, "Rebaba", d.DefectType().Label())
}

func TestNewDefect_RejectsQuantityAboveMaximum(t *testing.T) {
	_, err := NewDefect(DefectStain, MaxDefectQuantity+1, "")
	assert.ErrorContains(t, err, "cannot exceed")

	_, err = NewDefect(DefectStain, math.MaxInt64/2+1, "")
	assert.Error(t, err)

	d, err := NewDefect(DefectStain, MaxDefectQuantity, "")
	require.NoError(t, err)
	assert.Equal(t, MaxDefectQuantity, d.Quantity())
}

func TestNewQualityControl_RejectsDefectTotalAboveMaximum(t *testing.T) {
	defects := []*Defect{
		mustDefect(t, DefectStain, MaxDefectQuantity),
		mustDefect(t, DefectFlash, 1),
	}

	_, err := NewQualityControl(7, 2, 1000, Measurements{}, false, "", defects)

	assert.ErrorContains(t, err, "total defect quantity cannot exceed")
}

func TestNewQualityControl_LargeDefectTotalStaysPositive(t *testing.T) {
	defects := []*Defect{
		mustDefect(t, DefectStain, MaxDefectQuantity/2),
		mustDefect(t, DefectFlash, MaxDefectQuantity/2),
	}

	qc, err := NewQualityControl(7, 2, 1000, Measurements{}, false, "", defects)

	require.NoError(t, err)
	assert.Equal(t, MaxDefectQuantity, qc.TotalDefects())
	assert.True(t, qc.WastePercentage().IsPositive())
}
