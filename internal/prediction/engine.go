// Package prediction projects the yield and finances of a planting decision.
//
// The Engine is a pure function of its request and the injected agronomy
// table: it performs no I/O, keeps no state between calls and is safe for
// concurrent use. Results keep full float64 precision; rounding happens only
// when a result is rendered (see Display).
package prediction

import (
	"math"
	"strconv"
	"strings"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/types"
)

const (
	defaultVariety = "Standard"
	defaultSeason  = "Current"
)

// User-facing validation messages, one per failure kind.
const (
	msgMissingFields = "Please fill in all required fields"
	msgUnknownCrop   = "Prediction data not available for selected crop"
	msgUnknownSoil   = "Prediction data not available for selected soil type"
	msgInvalidArea   = "Area must be a positive number of acres"
	msgInvalidTier   = "Investment level must be one of Low, Medium, High or Premium"
)

// yieldMultipliers scale the profile's average yield by investment tier.
var yieldMultipliers = map[agronomy.InvestmentTier]float64{
	agronomy.TierLow:     0.8,
	agronomy.TierMedium:  0.95,
	agronomy.TierHigh:    1.1,
	agronomy.TierPremium: 1.25,
}

// confidenceLabels is a fixed lookup by tier; no statistics are involved.
var confidenceLabels = map[agronomy.InvestmentTier]string{
	agronomy.TierPremium: "High",
	agronomy.TierHigh:    "Medium-High",
	agronomy.TierMedium:  "Medium",
	agronomy.TierLow:     "Low-Medium",
}

// YieldMultiplier returns the yield multiplier for a tier.
func YieldMultiplier(tier agronomy.InvestmentTier) (float64, bool) {
	m, ok := yieldMultipliers[tier]
	return m, ok
}

// ConfidenceLabel returns the qualitative confidence label for a tier.
func ConfidenceLabel(tier agronomy.InvestmentTier) (string, bool) {
	l, ok := confidenceLabels[tier]
	return l, ok
}

// Request is a prediction input as submitted by a form. Area is kept as raw
// text so that a non-numeric entry is reported as a validation error instead
// of silently becoming zero.
type Request struct {
	Crop           string          `json:"crop"`
	SoilType       string          `json:"soil_type"`
	Area           types.FormValue `json:"area"`
	InvestmentTier string          `json:"investment_level"`
	Variety        string          `json:"variety,omitempty"`
	Season         string          `json:"season,omitempty"`
}

// Result is an immutable projection. Risks and Recommendations are the
// matched profile's lists, unmodified.
type Result struct {
	Crop           string                  `json:"crop"`
	Variety        string                  `json:"variety"`
	SoilType       string                  `json:"soil_type"`
	Season         string                  `json:"season"`
	InvestmentTier agronomy.InvestmentTier `json:"investment_level"`
	AreaAcres      float64                 `json:"area_acres"`

	ExpectedYield float64 `json:"expected_yield_tons"`
	YieldPerAcre  float64 `json:"yield_per_acre_tons"`
	TotalIncome   float64 `json:"total_income"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`

	// ProfitMargin is NetProfit / TotalIncome * 100. When TotalIncome is zero
	// the margin is undefined: ProfitMargin is 0 and ProfitMarginDefined false.
	ProfitMargin        float64 `json:"profit_margin_percent"`
	ProfitMarginDefined bool    `json:"profit_margin_defined"`

	Confidence      string   `json:"confidence"`
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// Engine computes predictions against an injected knowledge table.
type Engine struct {
	table *agronomy.Table
}

// NewEngine creates an Engine over table. A nil table selects the built-in
// defaults.
func NewEngine(table *agronomy.Table) *Engine {
	if table == nil {
		table = agronomy.DefaultTable()
	}
	return &Engine{table: table}
}

// Table returns the knowledge table the engine was built with.
func (e *Engine) Table() *agronomy.Table {
	return e.table
}

// Compute validates req and projects yield, income, expenses and profit.
//
// Validation order, first failure wins:
//  1. crop, area, soil type or investment tier blank: validation_missing_required_field
//  2. crop not in the table: validation_unknown_crop
//  3. soil type not listed for the crop: validation_unknown_soil_profile
//  4. area not a finite positive number, or so large the totals overflow: validation_invalid_area
//  5. investment tier not Low/Medium/High/Premium: validation_invalid_investment_tier
func (e *Engine) Compute(req Request) (*Result, error) {
	crop := strings.TrimSpace(req.Crop)
	soil := strings.TrimSpace(req.SoilType)
	tierName := strings.TrimSpace(req.InvestmentTier)

	if missing := missingFields(crop, soil, tierName, req.Area); len(missing) > 0 {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationMissingField,
			msgMissingFields,
			nil,
			map[string]any{"fields": missing},
		)
	}

	if !e.table.HasCrop(crop) {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationUnknownCrop,
			msgUnknownCrop,
			nil,
			map[string]any{"crop": crop},
		)
	}

	profile, ok := e.table.Profile(crop, soil)
	if !ok {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationUnknownSoil,
			msgUnknownSoil,
			nil,
			map[string]any{"crop": crop, "soil_type": soil, "available": e.table.Soils(crop)},
		)
	}

	area, err := parseArea(req.Area)
	if err != nil {
		return nil, err
	}

	tier, ok := agronomy.ParseTier(tierName)
	if !ok {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidTier,
			msgInvalidTier,
			nil,
			map[string]any{"investment_level": tierName},
		)
	}

	res := project(crop, soil, area, tier, profile, req.Variety, req.Season)
	if math.IsInf(res.TotalIncome, 0) || math.IsInf(res.TotalExpenses, 0) {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidArea,
			msgInvalidArea,
			nil,
			map[string]any{"area": strings.TrimSpace(req.Area.String()), "reason": "projection overflows"},
		)
	}
	return res, nil
}

// CompareTiers computes the same request at every investment tier, in
// ascending tier order. The request's own tier is ignored.
func (e *Engine) CompareTiers(req Request) ([]*Result, error) {
	tiers := agronomy.Tiers()
	results := make([]*Result, 0, len(tiers))
	for _, tier := range tiers {
		r := req
		r.InvestmentTier = string(tier)
		res, err := e.Compute(r)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// project applies the fixed formula. Inputs are already validated.
func project(
	crop, soil string,
	area float64,
	tier agronomy.InvestmentTier,
	profile agronomy.Profile,
	variety, season string,
) *Result {
	totalExpenses := profile.Expenses[tier] * area
	expectedYield := profile.Yield.Avg * yieldMultipliers[tier] * area
	totalIncome := expectedYield * profile.Price.Avg
	netProfit := totalIncome - totalExpenses

	var margin float64
	marginDefined := totalIncome != 0
	if marginDefined {
		margin = netProfit / totalIncome * 100
	}

	return &Result{
		Crop:                crop,
		Variety:             orDefault(variety, defaultVariety),
		SoilType:            soil,
		Season:              orDefault(season, defaultSeason),
		InvestmentTier:      tier,
		AreaAcres:           area,
		ExpectedYield:       expectedYield,
		YieldPerAcre:        expectedYield / area,
		TotalIncome:         totalIncome,
		TotalExpenses:       totalExpenses,
		NetProfit:           netProfit,
		ProfitMargin:        margin,
		ProfitMarginDefined: marginDefined,
		Confidence:          confidenceLabels[tier],
		Risks:               profile.Risks,
		Recommendations:     profile.Recommendations,
	}
}

func missingFields(crop, soil, tier string, area types.FormValue) []string {
	var missing []string
	if crop == "" {
		missing = append(missing, "crop")
	}
	if area.IsBlank() {
		missing = append(missing, "area")
	}
	if soil == "" {
		missing = append(missing, "soil_type")
	}
	if tier == "" {
		missing = append(missing, "investment_level")
	}
	return missing
}

func parseArea(raw types.FormValue) (float64, error) {
	text := strings.TrimSpace(raw.String())
	area, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(area) || math.IsInf(area, 0) || area <= 0 {
		return 0, types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidArea,
			msgInvalidArea,
			err,
			map[string]any{"area": text},
		)
	}
	return area, nil
}

func orDefault(s, def string) string {
	if v := strings.TrimSpace(s); v != "" {
		return v
	}
	return def
}
