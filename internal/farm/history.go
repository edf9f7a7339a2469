package farm

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/collection"
	"farmdesk/internal/types"
)

// FilterAll is the filter value meaning "no filter" in list pages.
const FilterAll = "All"

// SeasonView is a season record with its derived figures.
type SeasonView struct {
	*types.SeasonRecord
	YieldPerAcre float64 `json:"yield_per_acre_tons"`
	Profit       float64 `json:"profit"`
}

// YearStats aggregates every season planted in one year.
type YearStats struct {
	Year                int     `json:"year"`
	Seasons             int     `json:"seasons"`
	TotalIncome         float64 `json:"total_income"`
	TotalExpenses       float64 `json:"total_expenses"`
	TotalProfit         float64 `json:"total_profit"`
	TotalArea           float64 `json:"total_area_acres"`
	TotalYield          float64 `json:"total_yield_tons"`
	AvgYieldPerAcre     float64 `json:"avg_yield_per_acre_tons"`
	ProfitMargin        float64 `json:"profit_margin_percent"`
	ProfitMarginDefined bool    `json:"profit_margin_defined"`
}

// HistoryFilter narrows the season list. An empty crop or "All" and a zero
// year match everything.
type HistoryFilter struct {
	Crop string
	Year int
}

// HistoryView is the filtered season list with statistics for the years it
// covers, newest year first.
type HistoryView struct {
	Seasons []SeasonView `json:"seasons"`
	Stats   []YearStats  `json:"yearly_stats"`
	Years   []int        `json:"available_years"`
}

// SeasonInput records a season. Harvest date may be blank for planned or
// running seasons.
type SeasonInput struct {
	Season       string          `json:"season"`
	Crop         string          `json:"crop"`
	Variety      string          `json:"variety"`
	Area         types.FormValue `json:"area"`
	PlantingDate string          `json:"planting_date"`
	HarvestDate  string          `json:"harvest_date"`
	TotalYield   types.FormValue `json:"total_yield"`
	Income       types.FormValue `json:"income"`
	Expenses     types.FormValue `json:"expenses"`
	Status       string          `json:"status"`
	Weather      string          `json:"weather"`
	Issues       []string        `json:"issues"`
	Notes        string          `json:"notes"`
}

// HistoryService keeps the record of past and current growing seasons.
type HistoryService struct {
	seasons *collection.Collection[string, types.SeasonRecord]
	logger  *slog.Logger
}

// NewHistoryService creates a HistoryService holding records in order.
func NewHistoryService(logger *slog.Logger, records ...*types.SeasonRecord) (*HistoryService, error) {
	if logger == nil {
		logger = slog.Default()
	}
	c := collection.New(func(r types.SeasonRecord) string { return r.ID })
	for _, r := range records {
		if err := c.Add(*r); err != nil {
			return nil, err
		}
	}
	return &HistoryService{seasons: c, logger: logger}, nil
}

// Query returns the seasons matching filter. Statistics always cover every
// crop of a year so that the crop filter only narrows the list.
func (s *HistoryService) Query(_ context.Context, filter HistoryFilter) (*HistoryView, error) {
	crop := strings.TrimSpace(filter.Crop)
	if crop == FilterAll {
		crop = ""
	}

	all := s.seasons.All()
	view := &HistoryView{Seasons: []SeasonView{}, Stats: []YearStats{}, Years: yearsOf(all)}

	for i := range all {
		r := &all[i]
		if crop != "" && r.Crop != crop {
			continue
		}
		if filter.Year != 0 && r.Year() != filter.Year {
			continue
		}
		view.Seasons = append(view.Seasons, SeasonView{
			SeasonRecord: r,
			YieldPerAcre: r.YieldPerAcre(),
			Profit:       r.Profit(),
		})
	}

	if filter.Year != 0 {
		view.Stats = append(view.Stats, ComputeYearStats(filter.Year, all))
	} else {
		for _, y := range view.Years {
			view.Stats = append(view.Stats, ComputeYearStats(y, all))
		}
	}
	return view, nil
}

// LatestCompleted returns the completed season with the latest harvest date.
func (s *HistoryService) LatestCompleted(_ context.Context) (*SeasonView, bool) {
	var latest *types.SeasonRecord
	for _, r := range s.seasons.Filter(func(r types.SeasonRecord) bool { return r.Status == types.SeasonCompleted }) {
		if latest == nil || r.HarvestDate.After(latest.HarvestDate.Time) {
			rec := r
			latest = &rec
		}
	}
	if latest == nil {
		return nil, false
	}
	return &SeasonView{SeasonRecord: latest, YieldPerAcre: latest.YieldPerAcre(), Profit: latest.Profit()}, true
}

// RecordSeason validates and stores a season record.
func (s *HistoryService) RecordSeason(ctx context.Context, in SeasonInput) (*types.SeasonRecord, error) {
	rec := &types.SeasonRecord{
		ID:      uuid.NewString(),
		Season:  strings.TrimSpace(in.Season),
		Crop:    strings.TrimSpace(in.Crop),
		Variety: strings.TrimSpace(in.Variety),
		Status:  types.SeasonStatus(strings.TrimSpace(in.Status)),
		Weather: strings.TrimSpace(in.Weather),
		Issues:  nonNil(in.Issues),
		Notes:   strings.TrimSpace(in.Notes),
	}
	if rec.Status == "" {
		rec.Status = types.SeasonCompleted
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"season", rec.Season},
		{"crop", rec.Crop},
		{"area", in.Area.String()},
		{"planting_date", in.PlantingDate},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if rec.Status == types.SeasonCompleted && strings.TrimSpace(in.HarvestDate) == "" {
		missing = append(missing, "harvest_date")
	}
	if len(missing) > 0 {
		return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationMissingField, msgMissingFields, nil, map[string]any{"fields": missing})
	}

	if !rec.Status.IsValid() {
		return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationFailed, "unknown season status", nil,
			map[string]any{"status": rec.Status})
	}
	if !agronomy.IsCropType(rec.Crop) {
		return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationUnknownCrop, "unknown crop type", nil,
			map[string]any{"crop": rec.Crop, "allowed": agronomy.CropTypes()})
	}

	var err error
	if rec.AreaAcres, err = parsePositive(in.Area); err != nil {
		return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationInvalidArea, "area must be a positive number of acres", err,
			map[string]any{"area": in.Area.String()})
	}
	for _, n := range []struct {
		name string
		raw  types.FormValue
		dst  *float64
	}{
		{"total_yield", in.TotalYield, &rec.TotalYield},
		{"income", in.Income, &rec.Income},
		{"expenses", in.Expenses, &rec.Expenses},
	} {
		if *n.dst, err = parseReading(n.raw, 0); err != nil {
			return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationFailed, n.name+" must be a non-negative number", err,
				map[string]any{"field": n.name, "value": n.raw.String()})
		}
	}

	if rec.PlantingDate, err = types.ParseDate(in.PlantingDate); err != nil {
		return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationInvalidDate, "planting date must be YYYY-MM-DD", err,
			map[string]any{"planting_date": in.PlantingDate})
	}
	if strings.TrimSpace(in.HarvestDate) != "" {
		if rec.HarvestDate, err = types.ParseDate(in.HarvestDate); err != nil {
			return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationInvalidDate, "harvest date must be YYYY-MM-DD", err,
				map[string]any{"harvest_date": in.HarvestDate})
		}
		if rec.HarvestDate.Before(rec.PlantingDate.Time) {
			return nil, types.NewAppErrorWithDetails(types.ErrCodeValidationInvalidDate, "harvest date must not precede planting date", nil,
				map[string]any{"planting_date": rec.PlantingDate.String(), "harvest_date": rec.HarvestDate.String()})
		}
	}

	if err := s.seasons.Add(*rec); err != nil {
		return nil, types.NewAppError(types.ErrCodeConflictDuplicate, "season record already exists", err)
	}
	s.logger.InfoContext(ctx, "season recorded", "season_id", rec.ID, "season", rec.Season, "crop", rec.Crop)
	return rec, nil
}

// ComputeYearStats aggregates the records planted in year. The margin follows
// the prediction engine's rule: undefined, and zero, when income is zero.
func ComputeYearStats(year int, records []types.SeasonRecord) YearStats {
	stats := YearStats{Year: year}
	for i := range records {
		r := &records[i]
		if r.Year() != year {
			continue
		}
		stats.Seasons++
		stats.TotalIncome += r.Income
		stats.TotalExpenses += r.Expenses
		stats.TotalArea += r.AreaAcres
		stats.TotalYield += r.TotalYield
	}
	stats.TotalProfit = stats.TotalIncome - stats.TotalExpenses
	if stats.TotalArea > 0 {
		stats.AvgYieldPerAcre = stats.TotalYield / stats.TotalArea
	}
	if stats.TotalIncome != 0 {
		stats.ProfitMargin = stats.TotalProfit / stats.TotalIncome * 100
		stats.ProfitMarginDefined = true
	}
	return stats
}

func yearsOf(records []types.SeasonRecord) []int {
	seen := make(map[int]bool)
	years := []int{}
	for i := range records {
		y := records[i].Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
