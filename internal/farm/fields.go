package farm

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/types"
)

var (
	errNotPositive = errors.New("must be greater than zero")
	errNegative    = errors.New("must not be negative")
	errPHRange     = errors.New("must be between 0 and 14")
)

// FieldInput is the form for registering a field with its soil test. Name and
// soil type are required; blank readings are stored as zero.
type FieldInput struct {
	Name          string          `json:"name"`
	SoilType      string          `json:"soil_type"`
	PH            types.FormValue `json:"ph"`
	Nitrogen      types.FormValue `json:"nitrogen"`
	Phosphorus    types.FormValue `json:"phosphorus"`
	Potassium     types.FormValue `json:"potassium"`
	OrganicMatter types.FormValue `json:"organic_matter"`
	Moisture      types.FormValue `json:"moisture"`
}

// FieldReport is a field with its nutrient classification and the crop
// suitability of its soil.
type FieldReport struct {
	*types.Field
	NutrientLevels map[agronomy.Nutrient]agronomy.NutrientLevel `json:"nutrient_levels"`
	Suitability    agronomy.Suitability                          `json:"crop_suitability"`
}

// FieldService manages monitored fields and their soil tests.
type FieldService struct {
	repo   types.FieldRepository
	clock  types.Clock
	logger *slog.Logger
}

// NewFieldService creates a FieldService. A nil clock uses the system clock.
func NewFieldService(repo types.FieldRepository, clock types.Clock, logger *slog.Logger) *FieldService {
	if clock == nil {
		clock = types.RealClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldService{repo: repo, clock: clock, logger: logger}
}

// ListFields returns every field in registration order.
func (s *FieldService) ListFields(ctx context.Context) ([]*types.Field, error) {
	return s.repo.List(ctx)
}

// GetField returns a field with its nutrient levels and soil suitability.
func (s *FieldService) GetField(ctx context.Context, name string) (*FieldReport, error) {
	f, err := s.repo.Get(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	suitability, _ := agronomy.SuitabilityFor(f.SoilType)
	return &FieldReport{
		Field:          f,
		NutrientLevels: NutrientLevels(f),
		Suitability:    suitability,
	}, nil
}

// AddField registers a field. The test date is today and the status is
// derived from the readings.
func (s *FieldService) AddField(ctx context.Context, in FieldInput) (*types.Field, error) {
	name := strings.TrimSpace(in.Name)
	soil := strings.TrimSpace(in.SoilType)

	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if soil == "" {
		missing = append(missing, "soil_type")
	}
	if len(missing) > 0 {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationMissingField,
			"Please fill in field name and soil type",
			nil,
			map[string]any{"fields": missing},
		)
	}

	if !agronomy.IsSoilType(soil) {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidSoilType,
			"unknown soil type",
			nil,
			map[string]any{"soil_type": soil, "allowed": agronomy.SoilTypes()},
		)
	}

	f := &types.Field{Name: name, SoilType: soil}
	readings := []struct {
		name  string
		raw   types.FormValue
		dst   *float64
		upper float64
	}{
		{"ph", in.PH, &f.PH, 14},
		{"nitrogen", in.Nitrogen, &f.Nitrogen, 0},
		{"phosphorus", in.Phosphorus, &f.Phosphorus, 0},
		{"potassium", in.Potassium, &f.Potassium, 0},
		{"organic_matter", in.OrganicMatter, &f.OrganicMatter, 0},
		{"moisture", in.Moisture, &f.Moisture, 0},
	}
	for _, r := range readings {
		v, err := parseReading(r.raw, r.upper)
		if err != nil {
			return nil, types.NewAppErrorWithDetails(
				types.ErrCodeValidationInvalidReading,
				"invalid soil reading for "+r.name,
				err,
				map[string]any{"reading": r.name, "value": r.raw.String(), "reason": err.Error()},
			)
		}
		*r.dst = v
	}

	now := s.clock.Now()
	f.LastTested = types.NewDate(now)
	f.Status = DeriveSoilStatus(f)
	f.CreatedAt = now

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "field added", "field", f.Name, "soil_type", f.SoilType, "status", f.Status)
	return f, nil
}

// DeleteField removes a field and returns it.
func (s *FieldService) DeleteField(ctx context.Context, name string) (*types.Field, error) {
	f, err := s.repo.Delete(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "field removed from monitoring", "field", f.Name)
	return f, nil
}

// NutrientLevels classifies the field's N, P and K readings.
func NutrientLevels(f *types.Field) map[agronomy.Nutrient]agronomy.NutrientLevel {
	levels := make(map[agronomy.Nutrient]agronomy.NutrientLevel, 3)
	for n, v := range map[agronomy.Nutrient]float64{
		agronomy.Nitrogen:   f.Nitrogen,
		agronomy.Phosphorus: f.Phosphorus,
		agronomy.Potassium:  f.Potassium,
	} {
		level, _ := agronomy.ClassifyNutrient(n, v)
		levels[n] = level
	}
	return levels
}

// LowNutrients lists the nutrients below their optimal band, in N, P, K order.
func LowNutrients(f *types.Field) []agronomy.Nutrient {
	levels := NutrientLevels(f)
	var low []agronomy.Nutrient
	for _, n := range []agronomy.Nutrient{agronomy.Nitrogen, agronomy.Phosphorus, agronomy.Potassium} {
		if levels[n] == agronomy.LevelLow {
			low = append(low, n)
		}
	}
	return low
}

// DeriveSoilStatus rates a soil test: any low nutrient needs attention; all
// nutrients optimal with pH 6.5 to 7.0 and at least 3% organic matter is
// excellent; anything else is good.
func DeriveSoilStatus(f *types.Field) types.SoilStatus {
	if len(LowNutrients(f)) > 0 {
		return types.SoilNeedsAttention
	}
	for _, level := range NutrientLevels(f) {
		if level != agronomy.LevelOptimal {
			return types.SoilGood
		}
	}
	if f.PH >= 6.5 && f.PH <= 7.0 && f.OrganicMatter >= 3 {
		return types.SoilExcellent
	}
	return types.SoilGood
}

// parseReading parses an optional non-negative reading. An upper bound of
// zero means unbounded.
func parseReading(raw types.FormValue, upper float64) (float64, error) {
	if raw.IsBlank() {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw.String()), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errNegative
	}
	if upper > 0 && v > upper {
		return 0, errPHRange
	}
	return v, nil
}
