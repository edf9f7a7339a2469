package farm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdesk/internal/types"
)

func newDiseaseLibrary(t *testing.T) *DiseaseLibrary {
	t.Helper()
	lib, err := NewDiseaseLibrary(SampleDiseases()...)
	require.NoError(t, err)
	return lib
}

func diseaseNames(ds []*types.Disease) []string {
	names := make([]string, 0, len(ds))
	for _, d := range ds {
		names = append(names, d.Name)
	}
	return names
}

func TestDiseaseLibrary_Search(t *testing.T) {
	lib := newDiseaseLibrary(t)

	tests := []struct {
		name   string
		filter DiseaseFilter
		want   []string
	}{
		{"no filter", DiseaseFilter{}, []string{"Leaf Blast", "Stripe Rust", "Corn Smut", "Late Blight", "Black Scurf"}},
		{"All means no filter", DiseaseFilter{Crop: "All", Severity: "All"}, []string{"Leaf Blast", "Stripe Rust", "Corn Smut", "Late Blight", "Black Scurf"}},
		{"search by name", DiseaseFilter{Query: "blight"}, []string{"Late Blight"}},
		{"search by crop", DiseaseFilter{Query: "WHEAT"}, []string{"Stripe Rust"}},
		{"search by symptom", DiseaseFilter{Query: "galls"}, []string{"Corn Smut"}},
		{"severity", DiseaseFilter{Severity: "Medium"}, []string{"Stripe Rust", "Corn Smut"}},
		{"crop and severity", DiseaseFilter{Crop: "Corn", Severity: "Medium"}, []string{"Corn Smut"}},
		{"no match", DiseaseFilter{Crop: "Rice", Severity: "Low"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lib.Search(tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, diseaseNames(got))
		})
	}
}

func TestDiseaseLibrary_Search_InvalidSeverity(t *testing.T) {
	lib := newDiseaseLibrary(t)

	_, err := lib.Search(DiseaseFilter{Severity: "Extreme"})
	assert.Equal(t, types.ErrCodeValidationInvalidFilter, types.CodeOf(err))
}

func TestDiseaseLibrary_Get(t *testing.T) {
	lib := newDiseaseLibrary(t)

	d, err := lib.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "Late Blight", d.Name)
	assert.Equal(t, types.SeverityCritical, d.Severity)
	assert.Equal(t, "Oomycete", d.Type)

	_, err = lib.Get(42)
	assert.Equal(t, types.ErrCodeNotFoundDisease, types.CodeOf(err))
}

func TestDiseaseLibrary_Crops(t *testing.T) {
	lib := newDiseaseLibrary(t)
	assert.Equal(t, []string{"Rice", "Wheat", "Corn", "Tomatoes", "Potatoes"}, lib.Crops())
}
