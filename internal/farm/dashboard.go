package farm

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"farmdesk/internal/types"
)

// Alert is one line of the dashboard's alert panel.
type Alert struct {
	Type     string              `json:"type"`
	Message  string              `json:"message"`
	Priority types.AlertPriority `json:"priority"`
}

// CropSummary counts the monitored crops.
type CropSummary struct {
	Active    int                        `json:"active"`
	TotalArea float64                    `json:"total_area_acres"`
	ByHealth  map[types.HealthStatus]int `json:"by_health"`
}

// Summary is the landing-page overview of the farm.
type Summary struct {
	Location               string               `json:"location"`
	Weather                types.CurrentWeather `json:"weather"`
	Crops                  CropSummary          `json:"crops"`
	FieldsNeedingAttention []string             `json:"fields_needing_attention"`
	LatestSeason           *SeasonView          `json:"latest_season"`
	Alerts                 []Alert              `json:"alerts"`
}

type cropLister interface {
	ListCrops(ctx context.Context, filter types.CropFilter) ([]*types.Crop, error)
}

type fieldLister interface {
	ListFields(ctx context.Context) ([]*types.Field, error)
}

type seasonReader interface {
	LatestCompleted(ctx context.Context) (*SeasonView, bool)
}

type weatherReader interface {
	Report(location string) (*types.WeatherReport, error)
	DefaultLocation() string
}

// DashboardService assembles the summary from the other services.
type DashboardService struct {
	crops   cropLister
	fields  fieldLister
	history seasonReader
	weather weatherReader
}

// NewDashboardService wires the dashboard to its sources.
func NewDashboardService(crops cropLister, fields fieldLister, history seasonReader, weather weatherReader) *DashboardService {
	return &DashboardService{crops: crops, fields: fields, history: history, weather: weather}
}

// Summary builds the overview for location; blank selects the default.
// Weather, crops, fields and the latest season are loaded concurrently.
func (s *DashboardService) Summary(ctx context.Context, location string) (*Summary, error) {
	var (
		report *types.WeatherReport
		crops  []*types.Crop
		fields []*types.Field
		latest *SeasonView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report, err = s.weather.Report(location)
		return err
	})
	g.Go(func() error {
		var err error
		crops, err = s.crops.ListCrops(gctx, types.CropFilter{})
		if err != nil {
			return fmt.Errorf("listing crops: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		fields, err = s.fields.ListFields(gctx)
		if err != nil {
			return fmt.Errorf("listing fields: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if v, ok := s.history.LatestCompleted(gctx); ok {
			latest = v
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{
		Location:               report.Location,
		Weather:                report.Current,
		Crops:                  summariseCrops(crops),
		FieldsNeedingAttention: []string{},
		LatestSeason:           latest,
		Alerts:                 []Alert{},
	}

	for _, a := range report.Alerts {
		sum.Alerts = append(sum.Alerts, Alert{Type: "Weather", Message: a.Message, Priority: a.Priority})
	}
	for _, c := range crops {
		if !c.Health.NeedsAttention() {
			continue
		}
		priority := types.PriorityMedium
		if c.Health == types.HealthPoor {
			priority = types.PriorityHigh
		}
		msg := fmt.Sprintf("%s in %s needs attention", c.Name, c.Location)
		if len(c.Issues) > 0 {
			msg += ": " + strings.Join(c.Issues, ", ")
		}
		sum.Alerts = append(sum.Alerts, Alert{Type: "Crop", Message: msg, Priority: priority})
	}
	for _, f := range fields {
		if f.Status == types.SoilNeedsAttention {
			sum.FieldsNeedingAttention = append(sum.FieldsNeedingAttention, f.Name)
		}
		for _, n := range LowNutrients(f) {
			sum.Alerts = append(sum.Alerts, Alert{
				Type:     "Soil",
				Message:  fmt.Sprintf("%s levels low in %s", titleCase(string(n)), f.Name),
				Priority: types.PriorityLow,
			})
		}
	}

	sort.SliceStable(sum.Alerts, func(i, j int) bool {
		return sum.Alerts[i].Priority.Rank() < sum.Alerts[j].Priority.Rank()
	})
	return sum, nil
}

func summariseCrops(crops []*types.Crop) CropSummary {
	cs := CropSummary{ByHealth: make(map[types.HealthStatus]int, 4)}
	for _, h := range types.HealthStatuses() {
		cs.ByHealth[h] = 0
	}
	for _, c := range crops {
		cs.Active++
		cs.TotalArea += c.AreaAcres
		cs.ByHealth[c.Health]++
	}
	return cs
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
