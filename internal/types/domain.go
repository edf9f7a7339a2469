package types

import "time"

// Crop is a planting registered for health monitoring.
type Crop struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Variety        string       `json:"variety"`
	PlantingDate   Date         `json:"planting_date"`
	AreaAcres      float64      `json:"area_acres"`
	Location       string       `json:"location"`
	GrowthStage    string       `json:"growth_stage"`
	Health         HealthStatus `json:"health"`
	Progress       int          `json:"progress"`
	Issues         []string     `json:"issues"`
	LastInspection Date         `json:"last_inspection"`
	NextInspection Date         `json:"next_inspection"`
	CreatedAt      time.Time    `json:"created_at"`
}

// CropFilter narrows ListCrops. Zero values match everything.
type CropFilter struct {
	Health HealthStatus
	Name   string
}

// Matches reports whether c passes the filter. Name matching is exact,
// mirroring the crop-type option list.
func (f CropFilter) Matches(c *Crop) bool {
	if f.Health != "" && c.Health != f.Health {
		return false
	}
	if f.Name != "" && c.Name != f.Name {
		return false
	}
	return true
}

// Field is a monitored plot together with its latest soil test. Readings are
// in ppm except pH, organic matter (%) and moisture (%).
type Field struct {
	Name          string     `json:"name"`
	SoilType      string     `json:"soil_type"`
	PH            float64    `json:"ph"`
	Nitrogen      float64    `json:"nitrogen"`
	Phosphorus    float64    `json:"phosphorus"`
	Potassium     float64    `json:"potassium"`
	OrganicMatter float64    `json:"organic_matter"`
	Moisture      float64    `json:"moisture"`
	LastTested    Date       `json:"last_tested"`
	Status        SoilStatus `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SeasonRecord is one completed, running or planned growing season. Money
// figures are in the configured currency.
type SeasonRecord struct {
	ID           string       `json:"id"`
	Season       string       `json:"season"`
	Crop         string       `json:"crop"`
	Variety      string       `json:"variety"`
	AreaAcres    float64      `json:"area_acres"`
	PlantingDate Date         `json:"planting_date"`
	HarvestDate  Date         `json:"harvest_date"`
	TotalYield   float64      `json:"total_yield_tons"`
	Income       float64      `json:"income"`
	Expenses     float64      `json:"expenses"`
	Status       SeasonStatus `json:"status"`
	Weather      string       `json:"weather"`
	Issues       []string     `json:"issues"`
	Notes        string       `json:"notes"`
}

// Year is the calendar year a season is attributed to: its planting year.
func (s *SeasonRecord) Year() int {
	return s.PlantingDate.Year()
}

// YieldPerAcre is total yield spread over the planted area.
func (s *SeasonRecord) YieldPerAcre() float64 {
	if s.AreaAcres == 0 {
		return 0
	}
	return s.TotalYield / s.AreaAcres
}

// Profit is income minus expenses.
func (s *SeasonRecord) Profit() float64 {
	return s.Income - s.Expenses
}

// Disease is a reference entry in the disease library.
type Disease struct {
	ID               int      `json:"id" yaml:"id"`
	Name             string   `json:"name" yaml:"name"`
	Crop             string   `json:"crop" yaml:"crop"`
	Type             string   `json:"type" yaml:"type"`
	Severity         Severity `json:"severity" yaml:"severity"`
	Symptoms         []string `json:"symptoms" yaml:"symptoms"`
	Causes           []string `json:"causes" yaml:"causes"`
	Treatment        []string `json:"treatment" yaml:"treatment"`
	Prevention       []string `json:"prevention" yaml:"prevention"`
	OrganicTreatment []string `json:"organic_treatment" yaml:"organic_treatment"`
	AffectedStage    string   `json:"affected_stage" yaml:"affected_stage"`
	EconomicImpact   string   `json:"economic_impact" yaml:"economic_impact"`
}

// CurrentWeather is a snapshot of conditions at a farm location.
type CurrentWeather struct {
	TemperatureC float64 `json:"temperature_c"`
	FeelsLikeC   float64 `json:"feels_like_c"`
	Humidity     int     `json:"humidity_percent"`
	WindSpeedKmh float64 `json:"wind_speed_kmh"`
	VisibilityKm float64 `json:"visibility_km"`
	UVIndex      int     `json:"uv_index"`
	RainfallMm   float64 `json:"rainfall_mm"`
	Condition    string  `json:"condition"`
	Sunrise      string  `json:"sunrise"`
	Sunset       string  `json:"sunset"`
}

// ForecastDay is one day of the short-range forecast.
type ForecastDay struct {
	Day           string  `json:"day"`
	HighC         float64 `json:"high_c"`
	LowC          float64 `json:"low_c"`
	Condition     string  `json:"condition"`
	RainChancePct int     `json:"rain_chance_percent"`
}

// CropSuggestion rates a crop against the current weather.
type CropSuggestion struct {
	Crop        string `json:"crop"`
	Suitability string `json:"suitability"`
	Reason      string `json:"reason"`
	Action      string `json:"action"`
}

// WeatherAlert is a weather warning with a recommended action.
type WeatherAlert struct {
	Type     string        `json:"type"`
	Message  string        `json:"message"`
	Priority AlertPriority `json:"priority"`
	Action   string        `json:"action"`
}

// WeatherReport bundles everything the weather page shows for one location.
type WeatherReport struct {
	Location    string           `json:"location"`
	Current     CurrentWeather   `json:"current"`
	Forecast    []ForecastDay    `json:"forecast"`
	Suggestions []CropSuggestion `json:"crop_suggestions"`
	Alerts      []WeatherAlert   `json:"alerts"`
}
