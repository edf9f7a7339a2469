// Package agronomy holds the static agronomic knowledge the farm services are
// built on: per-crop, per-soil yield/price/expense profiles, the crop and soil
// catalogues, soil suitability and nutrient thresholds.
//
// The knowledge table is an immutable value. It is constructed once (from the
// built-in defaults or a YAML file) and injected into consumers, which lets
// tests substitute a table of their own.
package agronomy

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"farmdesk/internal/types"
)

// Range is a min/max/average triple. Yield ranges are in tons per acre and
// price ranges in currency per ton.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
	Avg float64 `json:"avg" yaml:"avg"`
}

// Profile is the agronomic row for one (crop, soil type) pair.
type Profile struct {
	Yield           Range                      `json:"yield" yaml:"yield"`
	Price           Range                      `json:"price" yaml:"price"`
	Expenses        map[InvestmentTier]float64 `json:"expenses" yaml:"expenses"`
	Risks           []string                   `json:"risks" yaml:"risks"`
	Recommendations []string                   `json:"recommendations" yaml:"recommendations"`
}

// clone returns a deep copy so the table never shares mutable state with callers.
func (p Profile) clone() Profile {
	out := p
	out.Expenses = make(map[InvestmentTier]float64, len(p.Expenses))
	for k, v := range p.Expenses {
		out.Expenses[k] = v
	}
	out.Risks = slices.Clone(p.Risks)
	out.Recommendations = slices.Clone(p.Recommendations)
	return out
}

// validate checks the structural rules every profile must satisfy.
func (p Profile) validate() error {
	for _, r := range []struct {
		name string
		rng  Range
	}{{"yield", p.Yield}, {"price", p.Price}} {
		if r.rng.Min < 0 || r.rng.Max < 0 || r.rng.Avg < 0 {
			return fmt.Errorf("%s range must not be negative", r.name)
		}
		if r.rng.Min > r.rng.Max {
			return fmt.Errorf("%s min %.2f exceeds max %.2f", r.name, r.rng.Min, r.rng.Max)
		}
		if r.rng.Avg < r.rng.Min || r.rng.Avg > r.rng.Max {
			return fmt.Errorf("%s avg %.2f outside [%.2f, %.2f]", r.name, r.rng.Avg, r.rng.Min, r.rng.Max)
		}
	}
	for _, tier := range Tiers() {
		v, ok := p.Expenses[tier]
		if !ok {
			return fmt.Errorf("expenses missing tier %s", tier)
		}
		if v < 0 {
			return fmt.Errorf("expenses for tier %s must not be negative", tier)
		}
	}
	for tier := range p.Expenses {
		if _, ok := ParseTier(string(tier)); !ok {
			return fmt.Errorf("expenses contain unknown tier %q", tier)
		}
	}
	return nil
}

// Table is the immutable crop -> soil type -> Profile knowledge table.
// Pairs that are not listed are absent; lookups never synthesize zero rows.
type Table struct {
	profiles map[string]map[string]Profile
}

// NewTable validates and deep-copies profiles into a Table. Crop and soil
// names are trimmed; an empty name or an invalid profile is rejected with an
// internal_agronomy_table_invalid error naming the offending row.
func NewTable(profiles map[string]map[string]Profile) (*Table, error) {
	if len(profiles) == 0 {
		return nil, types.NewAppError(types.ErrCodeInternalTable, "agronomy table has no crops", nil)
	}

	out := make(map[string]map[string]Profile, len(profiles))
	for crop, soils := range profiles {
		cropName := strings.TrimSpace(crop)
		if cropName == "" {
			return nil, types.NewAppError(types.ErrCodeInternalTable, "agronomy table contains an empty crop name", nil)
		}
		if _, dup := out[cropName]; dup {
			return nil, types.NewAppErrorWithDetails(types.ErrCodeInternalTable,
				fmt.Sprintf("crop %q is listed more than once", cropName), nil,
				map[string]any{"crop": cropName})
		}
		if len(soils) == 0 {
			return nil, types.NewAppError(types.ErrCodeInternalTable,
				fmt.Sprintf("crop %q has no soil profiles", cropName), nil)
		}
		bySoil := make(map[string]Profile, len(soils))
		for soil, p := range soils {
			soilName := strings.TrimSpace(soil)
			if soilName == "" {
				return nil, types.NewAppError(types.ErrCodeInternalTable,
					fmt.Sprintf("crop %q contains an empty soil type", cropName), nil)
			}
			if _, dup := bySoil[soilName]; dup {
				return nil, types.NewAppErrorWithDetails(types.ErrCodeInternalTable,
					fmt.Sprintf("crop %q lists soil type %q more than once", cropName, soilName), nil,
					map[string]any{"crop": cropName, "soil_type": soilName})
			}
			if err := p.validate(); err != nil {
				return nil, types.NewAppErrorWithDetails(types.ErrCodeInternalTable,
					fmt.Sprintf("invalid profile %s/%s", cropName, soilName), err,
					map[string]any{"crop": cropName, "soil_type": soilName, "reason": err.Error()})
			}
			bySoil[soilName] = p.clone()
		}
		out[cropName] = bySoil
	}
	return &Table{profiles: out}, nil
}

// HasCrop reports whether the table lists any soil profile for crop.
func (t *Table) HasCrop(crop string) bool {
	_, ok := t.profiles[strings.TrimSpace(crop)]
	return ok
}

// Profile returns a copy of the profile for (crop, soil), or false when the
// pair is not listed.
func (t *Table) Profile(crop, soil string) (Profile, bool) {
	soils, ok := t.profiles[strings.TrimSpace(crop)]
	if !ok {
		return Profile{}, false
	}
	p, ok := soils[strings.TrimSpace(soil)]
	if !ok {
		return Profile{}, false
	}
	return p.clone(), true
}

// Crops returns the crop names in the table, sorted.
func (t *Table) Crops() []string {
	names := make([]string, 0, len(t.profiles))
	for name := range t.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Soils returns the soil types listed for crop, sorted. Unknown crops yield nil.
func (t *Table) Soils(crop string) []string {
	soils, ok := t.profiles[strings.TrimSpace(crop)]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(soils))
	for name := range soils {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of (crop, soil) profiles.
func (t *Table) Len() int {
	n := 0
	for _, soils := range t.profiles {
		n += len(soils)
	}
	return n
}

// Profiles returns a deep copy of the whole table.
func (t *Table) Profiles() map[string]map[string]Profile {
	out := make(map[string]map[string]Profile, len(t.profiles))
	for crop, soils := range t.profiles {
		bySoil := make(map[string]Profile, len(soils))
		for soil, p := range soils {
			bySoil[soil] = p.clone()
		}
		out[crop] = bySoil
	}
	return out
}
