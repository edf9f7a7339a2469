package agronomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitabilityFor(t *testing.T) {
	s, ok := SuitabilityFor("Clay")
	require.True(t, ok)
	assert.Equal(t, "Clay", s.SoilType)
	assert.Contains(t, s.Suitable, "Rice")
	assert.Contains(t, s.Unsuitable, "Potato")

	_, ok = SuitabilityFor("Gravel")
	assert.False(t, ok)
}

func TestSuitabilityFor_EverySoilTypeCovered(t *testing.T) {
	for _, soil := range SoilTypes() {
		_, ok := SuitabilityFor(soil)
		assert.True(t, ok, "missing suitability for %s", soil)
	}
}

func TestSuitabilityFor_ReturnsCopy(t *testing.T) {
	s, _ := SuitabilityFor("Loamy")
	s.Suitable[0] = "changed"

	again, _ := SuitabilityFor("Loamy")
	assert.Equal(t, "Tomato", again.Suitable[0])
}

func TestClassifyNutrient(t *testing.T) {
	tests := []struct {
		nutrient Nutrient
		value    float64
		want     NutrientLevel
	}{
		{Nitrogen, 25, LevelLow},
		{Nitrogen, 30, LevelOptimal},
		{Nitrogen, 50, LevelOptimal},
		{Nitrogen, 51, LevelHigh},
		{Phosphorus, 24.9, LevelLow},
		{Phosphorus, 35, LevelOptimal},
		{Potassium, 120, LevelLow},
		{Potassium, 180, LevelOptimal},
		{Potassium, 201, LevelHigh},
	}
	for _, tt := range tests {
		got, ok := ClassifyNutrient(tt.nutrient, tt.value)
		require.True(t, ok)
		assert.Equal(t, tt.want, got, "%s=%v", tt.nutrient, tt.value)
	}

	_, ok := ClassifyNutrient("sulfur", 10)
	assert.False(t, ok)
}

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	assert.Len(t, c.CropTypes, 12)
	assert.Len(t, c.SoilTypes, 7)
	assert.Equal(t, []InvestmentTier{TierLow, TierMedium, TierHigh, TierPremium}, c.InvestmentTiers)
	assert.True(t, IsCropType("Rice"))
	assert.False(t, IsCropType("Banana"))
	assert.True(t, IsSoilType("Saline"))

	c.CropTypes[0] = "changed"
	assert.Equal(t, "Rice", CropTypes()[0])
}
