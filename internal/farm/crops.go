// Package farm implements the dashboard's monitoring services: crop health,
// soil fields, season history, the disease library, weather reports and the
// dashboard summary built from them.
package farm

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/types"
)

const (
	defaultCropArea     = 1.0
	defaultCropLocation = "Field A"
	initialGrowthStage  = "Germination"
	initialProgress     = 10
	msgMissingFields    = "Please fill in all required fields"
)

// CropInput is the registration form for a new crop. Area and location are
// optional.
type CropInput struct {
	Name         string          `json:"name"`
	Variety      string          `json:"variety"`
	PlantingDate string          `json:"planting_date"`
	Area         types.FormValue `json:"area"`
	Location     string          `json:"location"`
}

// CropService manages the crops under health monitoring.
type CropService struct {
	repo   types.CropRepository
	clock  types.Clock
	logger *slog.Logger
}

// NewCropService creates a CropService. A nil clock uses the system clock.
func NewCropService(repo types.CropRepository, clock types.Clock, logger *slog.Logger) *CropService {
	if clock == nil {
		clock = types.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CropService{repo: repo, clock: clock, logger: logger}
}

// ListCrops returns the crops matching filter in registration order.
func (s *CropService) ListCrops(ctx context.Context, filter types.CropFilter) ([]*types.Crop, error) {
	if filter.Health != "" && !filter.Health.IsValid() {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidFilter,
			"unknown health status",
			nil,
			map[string]any{"health": filter.Health, "allowed": types.HealthStatuses()},
		)
	}
	return s.repo.List(ctx, filter)
}

// GetCrop returns one crop by ID.
func (s *CropService) GetCrop(ctx context.Context, id string) (*types.Crop, error) {
	return s.repo.Get(ctx, id)
}

// AddCrop registers a new crop. Name, variety and planting date are
// required; a new crop starts at germination with good health and its last
// inspection set to today.
func (s *CropService) AddCrop(ctx context.Context, in CropInput) (*types.Crop, error) {
	name := strings.TrimSpace(in.Name)
	variety := strings.TrimSpace(in.Variety)
	planted := strings.TrimSpace(in.PlantingDate)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if variety == "" {
		missing = append(missing, "variety")
	}
	if planted == "" {
		missing = append(missing, "planting_date")
	}
	if len(missing) > 0 {
		return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationMissingField, msgMissingFields, nil, map[string]any{"fields": missing})
	}

	if !agronomy.IsCropType(name) {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationUnknownCrop,
			"unknown crop type",
			nil,
			map[string]any{"name": name, "allowed": agronomy.CropTypes()},
		)
	}

	plantingDate, err := types.ParseDate(planted)
	if err != nil {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidDate,
			"planting date must be YYYY-MM-DD",
			err,
			map[string]any{"planting_date": planted},
		)
	}

	area := defaultCropArea
	if !in.Area.IsBlank() {
		area, err = parsePositive(in.Area)
		if err != nil {
			return nil, types.NewAppErrorWithDetails(
				types.ErrCodeValidationInvalidArea,
				"area must be a positive number of acres",
				err,
				map[string]any{"area": in.Area.String()},
			)
		}
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = defaultCropLocation
	}

	now := s.clock.Now()
	crop := &types.Crop{
		ID:             uuid.NewString(),
		Name:           name,
		Variety:        variety,
		PlantingDate:   plantingDate,
		AreaAcres:      area,
		Location:       location,
		GrowthStage:    initialGrowthStage,
		Health:         types.HealthGood,
		Progress:       initialProgress,
		Issues:         []string{},
		LastInspection: types.NewDate(now),
		CreatedAt:      now,
	}
	if err := s.repo.Create(ctx, crop); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "crop added", "crop_id", crop.ID, "name", crop.Name, "location", crop.Location)
	return crop, nil
}

// DeleteCrop removes a crop from monitoring and returns it.
func (s *CropService) DeleteCrop(ctx context.Context, id string) (*types.Crop, error) {
	crop, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "crop removed from monitoring", "crop_id", id, "name", crop.Name)
	return crop, nil
}

// ScheduleInspection books a field inspection for tomorrow.
func (s *CropService) ScheduleInspection(ctx context.Context, id string) (*types.Crop, error) {
	tomorrow := types.NewDate(s.clock.Now()).AddDays(1)
	crop, err := s.repo.SetNextInspection(ctx, id, tomorrow)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "inspection scheduled", "crop_id", id, "date", tomorrow.String())
	return crop, nil
}

// Recommendations returns the health advice for one crop.
func (s *CropService) Recommendations(ctx context.Context, id string) ([]string, error) {
	crop, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return HealthRecommendations(crop), nil
}

// HealthRecommendations derives advice from a crop's health, reported issues
// and growth progress. Issue keywords match case-insensitively.
func HealthRecommendations(c *types.Crop) []string {
	recs := []string{}
	if c.Health.NeedsAttention() {
		recs = append(recs, "Increase monitoring frequency", "Check soil moisture levels")
	}
	if issuesMention(c.Issues, "pest") {
		recs = append(recs, "Apply organic pesticide treatment")
	}
	if issuesMention(c.Issues, "nutrient") {
		recs = append(recs, "Soil nutrient analysis recommended")
	}
	if issuesMention(c.Issues, "water") {
		recs = append(recs, "Adjust irrigation schedule")
	}
	if c.Progress < 50 {
		recs = append(recs, "Monitor weather conditions closely")
	}
	return recs
}

func issuesMention(issues []string, keyword string) bool {
	for _, issue := range issues {
		if strings.Contains(strings.ToLower(issue), keyword) {
			return true
		}
	}
	return false
}

// parsePositive parses a finite number greater than zero.
func parsePositive(v types.FormValue) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, errNotPositive
	}
	return f, nil
}
