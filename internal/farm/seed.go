package farm

import (
	"time"

	"farmdesk/internal/types"
)

// Sample data the memory stores start with.

var seedCreatedAt = time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

// SampleCrops returns the crops under monitoring in the sample farm.
func SampleCrops() []*types.Crop {
	return []*types.Crop{
		{
			ID:             "6f0d3c1e-8a52-4b7e-9a64-1d2c3b4a5e01",
			Name:           "Rice",
			Variety:        "Basmati",
			PlantingDate:   types.MustDate("2024-01-15"),
			AreaAcres:      2.5,
			Location:       "Field A",
			GrowthStage:    "Flowering",
			Health:         types.HealthExcellent,
			Progress:       85,
			Issues:         []string{},
			LastInspection: types.MustDate("2024-01-20"),
			CreatedAt:      seedCreatedAt,
		},
		{
			ID:             "6f0d3c1e-8a52-4b7e-9a64-1d2c3b4a5e02",
			Name:           "Wheat",
			Variety:        "Durum",
			PlantingDate:   types.MustDate("2024-01-10"),
			AreaAcres:      1.8,
			Location:       "Field B",
			GrowthStage:    "Grain Development",
			Health:         types.HealthGood,
			Progress:       70,
			Issues:         []string{"Minor nutrient deficiency"},
			LastInspection: types.MustDate("2024-01-18"),
			CreatedAt:      seedCreatedAt,
		},
		{
			ID:             "6f0d3c1e-8a52-4b7e-9a64-1d2c3b4a5e03",
			Name:           "Corn",
			Variety:        "Sweet Corn",
			PlantingDate:   types.MustDate("2024-01-05"),
			AreaAcres:      3.2,
			Location:       "Field C",
			GrowthStage:    "Maturation",
			Health:         types.HealthNeedsAttention,
			Progress:       60,
			Issues:         []string{"Pest infestation detected", "Irregular watering"},
			LastInspection: types.MustDate("2024-01-19"),
			CreatedAt:      seedCreatedAt,
		},
	}
}

// SampleFields returns the sample farm's fields. Status is derived from the
// readings rather than stored.
func SampleFields() []*types.Field {
	fields := []*types.Field{
		{Name: "Field A", SoilType: "Loamy", PH: 6.8, Nitrogen: 45, Phosphorus: 35, Potassium: 180, OrganicMatter: 3.2, Moisture: 65, LastTested: types.MustDate("2024-01-10")},
		{Name: "Field B", SoilType: "Clay", PH: 7.2, Nitrogen: 38, Phosphorus: 28, Potassium: 165, OrganicMatter: 2.8, Moisture: 70, LastTested: types.MustDate("2024-01-08")},
		{Name: "Field C", SoilType: "Sandy", PH: 6.2, Nitrogen: 25, Phosphorus: 18, Potassium: 120, OrganicMatter: 1.8, Moisture: 45, LastTested: types.MustDate("2024-01-12")},
	}
	for _, f := range fields {
		f.Status = DeriveSoilStatus(f)
		f.CreatedAt = seedCreatedAt
	}
	return fields
}

// SampleSeasons returns the recorded seasons of the sample farm.
func SampleSeasons() []*types.SeasonRecord {
	return []*types.SeasonRecord{
		{
			ID: "2b7e9c40-5d1a-4f3e-8c21-0a9b8c7d6e01", Season: "Winter 2024", Crop: "Wheat", Variety: "Durum",
			AreaAcres: 3.5, PlantingDate: types.MustDate("2024-01-10"), HarvestDate: types.MustDate("2024-04-15"),
			TotalYield: 9.8, Income: 98000, Expenses: 42000, Status: types.SeasonCompleted,
			Weather: "Favorable", Issues: []string{"Minor pest attack in week 8"},
			Notes: "Excellent harvest due to proper irrigation management",
		},
		{
			ID: "2b7e9c40-5d1a-4f3e-8c21-0a9b8c7d6e02", Season: "Monsoon 2024", Crop: "Rice", Variety: "Basmati",
			AreaAcres: 4.2, PlantingDate: types.MustDate("2024-06-15"), HarvestDate: types.MustDate("2024-10-20"),
			TotalYield: 13.4, Income: 134000, Expenses: 58000, Status: types.SeasonCompleted,
			Weather: "Good rainfall", Issues: []string{},
			Notes: "Best rice harvest in 3 years",
		},
		{
			ID: "2b7e9c40-5d1a-4f3e-8c21-0a9b8c7d6e03", Season: "Summer 2024", Crop: "Corn", Variety: "Sweet Corn",
			AreaAcres: 2.8, PlantingDate: types.MustDate("2024-03-01"), HarvestDate: types.MustDate("2024-06-10"),
			TotalYield: 12.6, Income: 126000, Expenses: 48000, Status: types.SeasonCompleted,
			Weather: "Hot and dry", Issues: []string{"Required extra irrigation"},
			Notes: "High market prices compensated for irrigation costs",
		},
		{
			ID: "2b7e9c40-5d1a-4f3e-8c21-0a9b8c7d6e04", Season: "Winter 2023", Crop: "Wheat", Variety: "Hard Red",
			AreaAcres: 3.0, PlantingDate: types.MustDate("2023-12-15"), HarvestDate: types.MustDate("2024-04-10"),
			TotalYield: 7.5, Income: 75000, Expenses: 38000, Status: types.SeasonCompleted,
			Weather: "Below average rainfall", Issues: []string{"Drought stress", "Lower than expected yield"},
			Notes: "Implemented drip irrigation for next season",
		},
	}
}

// SampleDiseases returns the disease reference library.
func SampleDiseases() []*types.Disease {
	return []*types.Disease{
		{
			ID: 1, Name: "Leaf Blast", Crop: "Rice", Type: "Fungal", Severity: types.SeverityHigh,
			Symptoms:         []string{"Diamond-shaped lesions on leaves", "Gray-white centers with dark borders", "Yellowing and wilting of leaves", "Reduced grain filling"},
			Causes:           []string{"High humidity (>90%)", "Temperature 25-28°C", "Excessive nitrogen fertilization", "Poor air circulation"},
			Treatment:        []string{"Apply fungicide (Tricyclazole)", "Reduce nitrogen application", "Improve field drainage", "Use resistant varieties"},
			Prevention:       []string{"Seed treatment before planting", "Balanced fertilization", "Proper spacing between plants", "Regular field monitoring"},
			OrganicTreatment: []string{"Neem oil spray", "Copper sulfate solution", "Bio-fungicide application", "Crop rotation"},
			AffectedStage:    "Vegetative to Reproductive",
			EconomicImpact:   "Can cause 50-90% yield loss",
		},
		{
			ID: 2, Name: "Stripe Rust", Crop: "Wheat", Type: "Fungal", Severity: types.SeverityMedium,
			Symptoms:         []string{"Yellow stripes on leaves", "Powdery yellow spores", "Premature leaf drying", "Reduced kernel weight"},
			Causes:           []string{"Cool temperatures (10-15°C)", "High humidity", "Wind dispersal of spores", "Susceptible varieties"},
			Treatment:        []string{"Fungicide application (Propiconazole)", "Remove infected plant debris", "Apply at early infection stage", "Follow up treatments if needed"},
			Prevention:       []string{"Use resistant wheat varieties", "Proper crop rotation", "Avoid over-irrigation", "Monitor weather conditions"},
			OrganicTreatment: []string{"Sulfur-based fungicides", "Baking soda spray", "Milk solution application", "Beneficial microorganism inoculation"},
			AffectedStage:    "Tillering to Heading",
			EconomicImpact:   "Can reduce yield by 20-40%",
		},
		{
			ID: 3, Name: "Corn Smut", Crop: "Corn", Type: "Fungal", Severity: types.SeverityMedium,
			Symptoms:         []string{"Large galls on ears, stalks, and leaves", "Silver-white to black galls", "Distorted plant growth", "Reduced ear formation"},
			Causes:           []string{"Wound entry points", "High nitrogen levels", "Warm, humid conditions", "Mechanical injury"},
			Treatment:        []string{"Remove and destroy infected galls", "Apply fungicide if caught early", "Reduce nitrogen fertilization", "Improve field sanitation"},
			Prevention:       []string{"Avoid mechanical injury", "Balanced fertilization", "Use certified disease-free seeds", "Crop rotation with non-host crops"},
			OrganicTreatment: []string{"Manual removal of galls", "Compost tea applications", "Beneficial bacteria inoculation", "Cultural control methods"},
			AffectedStage:    "All growth stages",
			EconomicImpact:   "Minor to moderate yield impact",
		},
		{
			ID: 4, Name: "Late Blight", Crop: "Tomatoes", Type: "Oomycete", Severity: types.SeverityCritical,
			Symptoms:         []string{"Dark water-soaked lesions on leaves", "White fuzzy growth on leaf undersides", "Brown spots on stems and fruits", "Rapid plant collapse"},
			Causes:           []string{"Cool, wet weather", "High humidity (>80%)", "Temperature 15-20°C", "Poor air circulation"},
			Treatment:        []string{"Immediate fungicide application", "Remove infected plants", "Improve air circulation", "Avoid overhead irrigation"},
			Prevention:       []string{"Use resistant varieties", "Proper plant spacing", "Avoid wet foliage", "Regular field inspection"},
			OrganicTreatment: []string{"Copper-based fungicides", "Baking soda spray", "Neem oil application", "Crop rotation"},
			AffectedStage:    "All stages, especially mature plants",
			EconomicImpact:   "Can destroy entire crop in days",
		},
		{
			ID: 5, Name: "Black Scurf", Crop: "Potatoes", Type: "Fungal", Severity: types.SeverityLow,
			Symptoms:         []string{"Black sclerotia on tuber surface", "Raised dark spots on skin", "Stem cankers at soil line", "Reduced plant vigor"},
			Causes:           []string{"Infected seed tubers", "Cool, wet soil conditions", "Poor soil drainage", "Extended storage in humid conditions"},
			Treatment:        []string{"Fungicide seed treatment", "Improve soil drainage", "Harvest in dry conditions", "Proper storage management"},
			Prevention:       []string{"Use certified seed potatoes", "Soil fumigation if severe", "Crop rotation", "Avoid planting in wet soils"},
			OrganicTreatment: []string{"Hot water seed treatment", "Biological control agents", "Organic soil amendments", "Solar sterilization"},
			AffectedStage:    "Tuber formation to harvest",
			EconomicImpact:   "Mainly cosmetic, affects marketability",
		},
	}
}

// SampleWeather returns a report for each of the three farm locations. All
// locations share the same regional conditions.
func SampleWeather() []types.WeatherReport {
	locations := []string{"Farm Location 1", "Farm Location 2", "Farm Location 3"}
	reports := make([]types.WeatherReport, 0, len(locations))
	for _, loc := range locations {
		reports = append(reports, types.WeatherReport{
			Location: loc,
			Current: types.CurrentWeather{
				TemperatureC: 28, FeelsLikeC: 32, Humidity: 65, WindSpeedKmh: 12,
				VisibilityKm: 8, UVIndex: 6, RainfallMm: 12.5,
				Condition: "Partly Cloudy", Sunrise: "6:15 AM", Sunset: "6:45 PM",
			},
			Forecast: []types.ForecastDay{
				{Day: "Today", HighC: 28, LowC: 22, Condition: "Partly Cloudy", RainChancePct: 20},
				{Day: "Tomorrow", HighC: 30, LowC: 24, Condition: "Sunny", RainChancePct: 5},
				{Day: "Day 3", HighC: 26, LowC: 20, Condition: "Rainy", RainChancePct: 80},
				{Day: "Day 4", HighC: 25, LowC: 19, Condition: "Cloudy", RainChancePct: 40},
				{Day: "Day 5", HighC: 29, LowC: 23, Condition: "Sunny", RainChancePct: 10},
			},
			Suggestions: []types.CropSuggestion{
				{Crop: "Rice", Suitability: "Excellent", Reason: "High humidity and warm temperature perfect for rice cultivation", Action: "Plant new seedlings in prepared fields"},
				{Crop: "Wheat", Suitability: "Good", Reason: "Current temperature suitable, monitor for upcoming rain", Action: "Continue regular watering schedule"},
				{Crop: "Corn", Suitability: "Moderate", Reason: "Weather conditions acceptable but rain expected in 3 days", Action: "Prepare drainage systems and harvest mature crops"},
				{Crop: "Tomatoes", Suitability: "Poor", Reason: "High humidity may cause fungal diseases", Action: "Avoid planting, increase ventilation for existing crops"},
			},
			Alerts: []types.WeatherAlert{
				{Type: "Rain Warning", Message: "Heavy rainfall expected in 2 days (15-20mm)", Priority: types.PriorityHigh, Action: "Prepare harvesting equipment and drainage"},
				{Type: "Temperature Alert", Message: "High temperatures may stress young plants", Priority: types.PriorityMedium, Action: "Increase irrigation frequency"},
			},
		})
	}
	return reports
}
