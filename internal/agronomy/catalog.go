package agronomy

import (
	"slices"
	"strings"
)

var (
	cropTypes = []string{
		"Rice", "Wheat", "Corn", "Tomatoes", "Potatoes", "Soybeans",
		"Barley", "Sugarcane", "Cotton", "Cabbage", "Carrots", "Onions",
	}
	soilTypes    = []string{"Clay", "Sandy", "Loamy", "Silty", "Peaty", "Chalky", "Saline"}
	seasons      = []string{"Winter", "Summer", "Monsoon", "Post-Monsoon"}
	growthStages = []string{
		"Germination", "Seedling", "Vegetative", "Flowering",
		"Fruit Development", "Grain Development", "Maturation", "Harvest Ready",
	}
)

// CropTypes lists the crops a farm can register for monitoring.
func CropTypes() []string { return slices.Clone(cropTypes) }

// SoilTypes lists the soil classifications understood by the soil monitor.
func SoilTypes() []string { return slices.Clone(soilTypes) }

// Seasons lists the growing seasons offered for predictions.
func Seasons() []string { return slices.Clone(seasons) }

// GrowthStages lists crop growth stages in order.
func GrowthStages() []string { return slices.Clone(growthStages) }

// IsCropType reports whether name is a known crop type (exact match).
func IsCropType(name string) bool {
	return slices.Contains(cropTypes, strings.TrimSpace(name))
}

// IsSoilType reports whether name is a known soil type (exact match).
func IsSoilType(name string) bool {
	return slices.Contains(soilTypes, strings.TrimSpace(name))
}

// Catalog bundles every option list a client needs to build its forms.
type Catalog struct {
	CropTypes       []string         `json:"crop_types" yaml:"crop_types"`
	SoilTypes       []string         `json:"soil_types" yaml:"soil_types"`
	Seasons         []string         `json:"seasons" yaml:"seasons"`
	InvestmentTiers []InvestmentTier `json:"investment_tiers" yaml:"investment_tiers"`
	GrowthStages    []string         `json:"growth_stages" yaml:"growth_stages"`
}

// NewCatalog returns a fresh copy of every option list.
func NewCatalog() Catalog {
	return Catalog{
		CropTypes:       CropTypes(),
		SoilTypes:       SoilTypes(),
		Seasons:         Seasons(),
		InvestmentTiers: Tiers(),
		GrowthStages:    GrowthStages(),
	}
}
