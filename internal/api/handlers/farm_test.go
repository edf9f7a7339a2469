package handlers

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"farmdesk/internal/farm"
	"farmdesk/internal/types"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newFieldHandler(t *testing.T) *FieldHandler {
	t.Helper()
	repo, err := farm.NewMemoryFieldRepository(farm.SampleFields()...)
	if err != nil {
		t.Fatalf("seeding fields: %v", err)
	}
	return NewFieldHandler(farm.NewFieldService(repo, types.FixedClock(testNow), discardLogger()), discardLogger())
}

func TestFieldHandler_ListAndGet(t *testing.T) {
	h := newFieldHandler(t)

	rec := serve(t, h.RegisterRoutes, http.MethodGet, "/v1/fields", nil)
	expectStatus(t, rec, http.StatusOK)
	var fields []types.Field
	decodeData(t, rec, &fields)
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/fields/"+url.PathEscape("Field A"), nil)
	expectStatus(t, rec, http.StatusOK)
	var report farm.FieldReport
	decodeData(t, rec, &report)
	if report.Field == nil || report.Name != "Field A" {
		t.Fatalf("report = %+v", report)
	}
	if len(report.NutrientLevels) == 0 {
		t.Error("nutrient levels missing")
	}

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/fields/Nowhere", nil)
	expectStatus(t, rec, http.StatusNotFound)
	if code := errorCode(t, rec); code != string(types.ErrCodeNotFoundField) {
		t.Errorf("code = %q", code)
	}
}

func TestFieldHandler_CreateAndDelete(t *testing.T) {
	h := newFieldHandler(t)

	body := map[string]any{"name": "Field D", "soil_type": "Silty", "ph": "6.5", "nitrogen": 40, "phosphorus": 30, "potassium": 150}
	rec := serve(t, h.RegisterRoutes, http.MethodPost, "/v1/fields", body)
	expectStatus(t, rec, http.StatusCreated)
	var created types.Field
	decodeData(t, rec, &created)
	if created.LastTested.String() != "2025-03-14" {
		t.Errorf("last tested = %s", created.LastTested)
	}

	rec = serve(t, h.RegisterRoutes, http.MethodPost, "/v1/fields", body)
	expectStatus(t, rec, http.StatusConflict)
	if code := errorCode(t, rec); code != string(types.ErrCodeConflictFieldExists) {
		t.Errorf("code = %q", code)
	}

	rec = serve(t, h.RegisterRoutes, http.MethodDelete, "/v1/fields/Field%20D", nil)
	expectStatus(t, rec, http.StatusOK)

	rec = serve(t, h.RegisterRoutes, http.MethodDelete, "/v1/fields/Field%20D", nil)
	expectStatus(t, rec, http.StatusNotFound)
}

func TestFieldHandler_CreateInvalid(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want types.ErrorCode
	}{
		{"missing soil", map[string]any{"name": "Field E"}, types.ErrCodeValidationMissingField},
		{"unknown soil", map[string]any{"name": "Field E", "soil_type": "Gravel"}, types.ErrCodeValidationInvalidSoilType},
		{"ph out of range", map[string]any{"name": "Field E", "soil_type": "Clay", "ph": 15}, types.ErrCodeValidationInvalidReading},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, newFieldHandler(t).RegisterRoutes, http.MethodPost, "/v1/fields", tt.body)
			expectStatus(t, rec, http.StatusBadRequest)
			if code := errorCode(t, rec); code != string(tt.want) {
				t.Errorf("code = %q, want %q", code, tt.want)
			}
		})
	}
}

func newHistoryHandler(t *testing.T) *HistoryHandler {
	t.Helper()
	svc, err := farm.NewHistoryService(discardLogger(), farm.SampleSeasons()...)
	if err != nil {
		t.Fatalf("seeding history: %v", err)
	}
	return NewHistoryHandler(svc, testValidator(), discardLogger())
}

func TestHistoryHandler_Query(t *testing.T) {
	h := newHistoryHandler(t)

	rec := serve(t, h.RegisterRoutes, http.MethodGet, "/v1/history", nil)
	expectStatus(t, rec, http.StatusOK)
	var all farm.HistoryView
	decodeData(t, rec, &all)
	if len(all.Seasons) != len(farm.SampleSeasons()) {
		t.Errorf("got %d seasons, want %d", len(all.Seasons), len(farm.SampleSeasons()))
	}

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/history?crop=Wheat&year=All", nil)
	expectStatus(t, rec, http.StatusOK)
	var wheat farm.HistoryView
	decodeData(t, rec, &wheat)
	if len(wheat.Seasons) == 0 {
		t.Fatal("no wheat seasons")
	}
	for _, s := range wheat.Seasons {
		if s.Crop != "Wheat" {
			t.Errorf("season crop = %q", s.Crop)
		}
	}

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/history?year=2024", nil)
	expectStatus(t, rec, http.StatusOK)
	var y2024 farm.HistoryView
	decodeData(t, rec, &y2024)
	if len(y2024.Stats) != 1 || y2024.Stats[0].Year != 2024 {
		t.Errorf("stats = %+v", y2024.Stats)
	}
}

func TestHistoryHandler_QueryInvalid(t *testing.T) {
	tests := []struct {
		target string
		want   types.ErrorCode
	}{
		{"/v1/history?year=last", types.ErrCodeValidationInvalidFilter},
		{"/v1/history?year=12", types.ErrCodeValidationFailed},
		{"/v1/history?crop=Kale", types.ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(t, newHistoryHandler(t).RegisterRoutes, http.MethodGet, tt.target, nil)
			expectStatus(t, rec, http.StatusBadRequest)
			if code := errorCode(t, rec); code != string(tt.want) {
				t.Errorf("code = %q, want %q", code, tt.want)
			}
		})
	}
}

func TestHistoryHandler_Record(t *testing.T) {
	h := newHistoryHandler(t)

	body := map[string]any{
		"season": "Winter 2025", "crop": "Wheat", "variety": "Durum", "area": "4",
		"planting_date": "2025-01-05", "harvest_date": "2025-04-20",
		"total_yield": 12, "income": 240000, "expenses": 110000,
	}
	rec := serve(t, h.RegisterRoutes, http.MethodPost, "/v1/history", body)
	expectStatus(t, rec, http.StatusCreated)
	var got types.SeasonRecord
	decodeData(t, rec, &got)
	if got.ID == "" || got.Status != types.SeasonCompleted {
		t.Errorf("record = %+v", got)
	}

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/history?year=2025", nil)
	expectStatus(t, rec, http.StatusOK)
	var view farm.HistoryView
	decodeData(t, rec, &view)
	if len(view.Seasons) != 1 {
		t.Errorf("2025 seasons = %d, want 1", len(view.Seasons))
	}

	body["harvest_date"] = "2024-12-01"
	rec = serve(t, h.RegisterRoutes, http.MethodPost, "/v1/history", body)
	expectStatus(t, rec, http.StatusBadRequest)
	if code := errorCode(t, rec); code != string(types.ErrCodeValidationInvalidDate) {
		t.Errorf("code = %q", code)
	}
}

func newDiseaseHandler(t *testing.T) *DiseaseHandler {
	t.Helper()
	lib, err := farm.NewDiseaseLibrary(farm.SampleDiseases()...)
	if err != nil {
		t.Fatalf("seeding diseases: %v", err)
	}
	return NewDiseaseHandler(lib)
}

func TestDiseaseHandler(t *testing.T) {
	h := newDiseaseHandler(t)

	tests := []struct {
		target string
		want   []string
	}{
		{"/v1/diseases", []string{"Leaf Blast", "Stripe Rust", "Corn Smut", "Late Blight", "Black Scurf"}},
		{"/v1/diseases?crop=Rice", []string{"Leaf Blast"}},
		{"/v1/diseases?severity=Medium&crop=All", []string{"Stripe Rust", "Corn Smut"}},
		{"/v1/diseases?q=blight", []string{"Late Blight"}},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := serve(t, h.RegisterRoutes, http.MethodGet, tt.target, nil)
			expectStatus(t, rec, http.StatusOK)
			var got []types.Disease
			decodeData(t, rec, &got)
			names := make([]string, 0, len(got))
			for _, d := range got {
				names = append(names, d.Name)
			}
			if len(names) != len(tt.want) {
				t.Fatalf("names = %v, want %v", names, tt.want)
			}
			for i := range names {
				if names[i] != tt.want[i] {
					t.Errorf("names = %v, want %v", names, tt.want)
					break
				}
			}
		})
	}

	rec := serve(t, h.RegisterRoutes, http.MethodGet, "/v1/diseases?severity=Extreme", nil)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/diseases/2", nil)
	expectStatus(t, rec, http.StatusOK)
	var d types.Disease
	decodeData(t, rec, &d)
	if d.Name != "Stripe Rust" {
		t.Errorf("name = %q", d.Name)
	}

	for _, target := range []string{"/v1/diseases/99", "/v1/diseases/rust"} {
		rec = serve(t, h.RegisterRoutes, http.MethodGet, target, nil)
		expectStatus(t, rec, http.StatusNotFound)
		if code := errorCode(t, rec); code != string(types.ErrCodeNotFoundDisease) {
			t.Errorf("%s: code = %q", target, code)
		}
	}
}

func TestWeatherHandler(t *testing.T) {
	h := NewWeatherHandler(farm.NewWeatherService(farm.SampleWeather()...))

	rec := serve(t, h.RegisterRoutes, http.MethodGet, "/v1/weather/locations", nil)
	expectStatus(t, rec, http.StatusOK)
	var locations []string
	decodeData(t, rec, &locations)
	if len(locations) != 3 {
		t.Fatalf("locations = %v", locations)
	}

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/weather", nil)
	expectStatus(t, rec, http.StatusOK)
	var report types.WeatherReport
	decodeData(t, rec, &report)
	if report.Location != locations[0] {
		t.Errorf("default location = %q, want %q", report.Location, locations[0])
	}

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/weather?location=Mars", nil)
	expectStatus(t, rec, http.StatusNotFound)
	if code := errorCode(t, rec); code != string(types.ErrCodeNotFoundLocation) {
		t.Errorf("code = %q", code)
	}
}

func TestDashboardHandler(t *testing.T) {
	crops, err := farm.NewMemoryCropRepository(farm.SampleCrops()...)
	if err != nil {
		t.Fatal(err)
	}
	fields, err := farm.NewMemoryFieldRepository(farm.SampleFields()...)
	if err != nil {
		t.Fatal(err)
	}
	history, err := farm.NewHistoryService(discardLogger(), farm.SampleSeasons()...)
	if err != nil {
		t.Fatal(err)
	}
	svc := farm.NewDashboardService(
		farm.NewCropService(crops, types.FixedClock(testNow), discardLogger()),
		farm.NewFieldService(fields, types.FixedClock(testNow), discardLogger()),
		history,
		farm.NewWeatherService(farm.SampleWeather()...),
	)
	h := NewDashboardHandler(svc)

	rec := serve(t, h.RegisterRoutes, http.MethodGet, "/v1/dashboard", nil)
	expectStatus(t, rec, http.StatusOK)
	var got farm.Summary
	decodeData(t, rec, &got)
	if got.Crops.Active != 3 {
		t.Errorf("active crops = %d, want 3", got.Crops.Active)
	}
	if got.LatestSeason == nil {
		t.Error("latest season missing")
	}

	rec = serve(t, h.RegisterRoutes, http.MethodGet, "/v1/dashboard?location=Mars", nil)
	expectStatus(t, rec, http.StatusNotFound)
}
