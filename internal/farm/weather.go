package farm

import (
	"slices"
	"strings"

	"farmdesk/internal/types"
)

// WeatherService serves the static weather report of each farm location.
type WeatherService struct {
	locations []string
	reports   map[string]types.WeatherReport
}

// NewWeatherService creates a service over reports. The first report's
// location is the default.
func NewWeatherService(reports ...types.WeatherReport) *WeatherService {
	s := &WeatherService{reports: make(map[string]types.WeatherReport, len(reports))}
	for _, r := range reports {
		if _, dup := s.reports[r.Location]; dup {
			continue
		}
		s.locations = append(s.locations, r.Location)
		s.reports[r.Location] = r
	}
	return s
}

// Locations lists the known farm locations, default first.
func (s *WeatherService) Locations() []string {
	return slices.Clone(s.locations)
}

// DefaultLocation returns the location used when none is requested.
func (s *WeatherService) DefaultLocation() string {
	if len(s.locations) == 0 {
		return ""
	}
	return s.locations[0]
}

// Report returns the weather report for location; blank selects the default.
func (s *WeatherService) Report(location string) (*types.WeatherReport, error) {
	name := strings.TrimSpace(location)
	if name == "" {
		name = s.DefaultLocation()
	}
	r, ok := s.reports[name]
	if !ok {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeNotFoundLocation,
			"unknown farm location",
			nil,
			map[string]any{"location": name, "available": s.Locations()},
		)
	}
	out := r
	out.Forecast = slices.Clone(r.Forecast)
	out.Suggestions = slices.Clone(r.Suggestions)
	out.Alerts = slices.Clone(r.Alerts)
	return &out, nil
}
