package agronomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTierRejectsUnknownNames(t *testing.T) {
	tier, ok := ParseTier(" Premium ")
	assert.True(t, ok)
	assert.Equal(t, TierPremium, tier)

	for _, bad := range []string{"", "premium", "Ultra"} {
		_, ok := ParseTier(bad)
		assert.False(t, ok, bad)
	}
}

func TestNewCatalogReturnsCopies(t *testing.T) {
	c := NewCatalog()
	assert.Len(t, c.CropTypes, 12)
	assert.Equal(t, Tiers(), c.InvestmentTiers)

	c.SoilTypes[0] = "Gravel"
	assert.Equal(t, "Clay", SoilTypes()[0])
	assert.False(t, IsSoilType("Gravel"))
	assert.True(t, IsCropType(" Onions "))
}
