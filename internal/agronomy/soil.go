package agronomy

import (
	"slices"
	"strings"
)

// Suitability groups crops by how well they grow on a soil type.
type Suitability struct {
	SoilType   string   `json:"soil_type" yaml:"soil_type"`
	Suitable   []string `json:"suitable" yaml:"suitable"`
	Moderately []string `json:"moderately_suitable" yaml:"moderately_suitable"`
	Unsuitable []string `json:"unsuitable" yaml:"unsuitable"`
}

var soilSuitability = map[string]Suitability{
	"Clay": {
		Suitable:   []string{"Rice", "Wheat", "Sugarcane", "Cabbage"},
		Moderately: []string{"Corn", "Barley"},
		Unsuitable: []string{"Carrot", "Radish", "Potato"},
	},
	"Sandy": {
		Suitable:   []string{"Potato", "Carrot", "Radish", "Watermelon"},
		Moderately: []string{"Corn", "Tomato"},
		Unsuitable: []string{"Rice", "Sugarcane"},
	},
	"Loamy": {
		Suitable:   []string{"Tomato", "Corn", "Wheat", "Rice", "Beans", "Cabbage"},
		Moderately: []string{"Sugarcane"},
		Unsuitable: []string{},
	},
	"Silty": {
		Suitable:   []string{"Wheat", "Corn", "Soybeans"},
		Moderately: []string{"Rice", "Vegetables"},
		Unsuitable: []string{"Root vegetables"},
	},
	"Peaty": {
		Suitable:   []string{"Cabbage", "Lettuce", "Spinach"},
		Moderately: []string{"Potatoes", "Carrots"},
		Unsuitable: []string{"Cereals", "Grasses"},
	},
	"Chalky": {
		Suitable:   []string{"Cabbage", "Spinach", "Corn"},
		Moderately: []string{"Wheat", "Barley"},
		Unsuitable: []string{"Potatoes", "Berries"},
	},
	"Saline": {
		Suitable:   []string{"Salt-tolerant crops", "Barley"},
		Moderately: []string{"Sugar beet"},
		Unsuitable: []string{"Most vegetables", "Fruits"},
	},
}

// SuitabilityFor returns the crop suitability lists for a soil type.
func SuitabilityFor(soilType string) (Suitability, bool) {
	name := strings.TrimSpace(soilType)
	s, ok := soilSuitability[name]
	if !ok {
		return Suitability{}, false
	}
	return Suitability{
		SoilType:   name,
		Suitable:   slices.Clone(s.Suitable),
		Moderately: slices.Clone(s.Moderately),
		Unsuitable: slices.Clone(s.Unsuitable),
	}, true
}

// Nutrient identifies a macronutrient measured by a soil test.
type Nutrient string

const (
	Nitrogen   Nutrient = "nitrogen"
	Phosphorus Nutrient = "phosphorus"
	Potassium  Nutrient = "potassium"
)

// NutrientLevel classifies a soil test reading.
type NutrientLevel string

const (
	LevelLow     NutrientLevel = "Low"
	LevelOptimal NutrientLevel = "Optimal"
	LevelHigh    NutrientLevel = "High"
)

// nutrientBand is the optimal range for a nutrient reading; the bounds are inclusive.
type nutrientBand struct {
	low, high float64
}

var nutrientBands = map[Nutrient]nutrientBand{
	Nitrogen:   {low: 30, high: 50},
	Phosphorus: {low: 25, high: 40},
	Potassium:  {low: 150, high: 200},
}

// ClassifyNutrient returns Low below the band, High above it and Optimal
// inside it. Unknown nutrients return false.
func ClassifyNutrient(n Nutrient, value float64) (NutrientLevel, bool) {
	band, ok := nutrientBands[n]
	if !ok {
		return "", false
	}
	switch {
	case value < band.low:
		return LevelLow, true
	case value > band.high:
		return LevelHigh, true
	default:
		return LevelOptimal, true
	}
}
