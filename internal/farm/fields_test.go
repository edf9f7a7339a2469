package farm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/types"
)

func newFieldService(t *testing.T) *FieldService {
	t.Helper()
	repo, err := NewMemoryFieldRepository(SampleFields()...)
	require.NoError(t, err)
	return NewFieldService(repo, types.FixedClock(testNow), discardLogger())
}

func TestSampleFields_StatusMatchesReadings(t *testing.T) {
	fields := SampleFields()
	assert.Equal(t, types.SoilExcellent, fields[0].Status)
	assert.Equal(t, types.SoilGood, fields[1].Status)
	assert.Equal(t, types.SoilNeedsAttention, fields[2].Status)
}

func TestDeriveSoilStatus(t *testing.T) {
	optimal := types.Field{PH: 6.8, Nitrogen: 40, Phosphorus: 30, Potassium: 175, OrganicMatter: 3.5}

	tests := []struct {
		name   string
		modify func(f *types.Field)
		want   types.SoilStatus
	}{
		{"all optimal", func(*types.Field) {}, types.SoilExcellent},
		{"pH at lower edge", func(f *types.Field) { f.PH = 6.5 }, types.SoilExcellent},
		{"pH at upper edge", func(f *types.Field) { f.PH = 7.0 }, types.SoilExcellent},
		{"pH too alkaline", func(f *types.Field) { f.PH = 7.1 }, types.SoilGood},
		{"organic matter short", func(f *types.Field) { f.OrganicMatter = 2.9 }, types.SoilGood},
		{"nitrogen high", func(f *types.Field) { f.Nitrogen = 55 }, types.SoilGood},
		{"potassium low", func(f *types.Field) { f.Potassium = 149 }, types.SoilNeedsAttention},
		{"low beats high", func(f *types.Field) { f.Nitrogen, f.Phosphorus = 60, 10 }, types.SoilNeedsAttention},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := optimal
			tt.modify(&f)
			assert.Equal(t, tt.want, DeriveSoilStatus(&f))
		})
	}
}

func TestFieldService_GetField(t *testing.T) {
	svc := newFieldService(t)

	report, err := svc.GetField(context.Background(), "Field C")
	require.NoError(t, err)
	assert.Equal(t, "Sandy", report.SoilType)
	assert.Equal(t, map[agronomy.Nutrient]agronomy.NutrientLevel{
		agronomy.Nitrogen:   agronomy.LevelLow,
		agronomy.Phosphorus: agronomy.LevelLow,
		agronomy.Potassium:  agronomy.LevelLow,
	}, report.NutrientLevels)
	assert.Equal(t, []string{"Potato", "Carrot", "Radish", "Watermelon"}, report.Suitability.Suitable)

	_, err = svc.GetField(context.Background(), "Field Z")
	assert.Equal(t, types.ErrCodeNotFoundField, types.CodeOf(err))
}

func TestFieldService_AddField(t *testing.T) {
	svc := newFieldService(t)
	ctx := context.Background()

	f, err := svc.AddField(ctx, FieldInput{
		Name: "North Plot", SoilType: "Silty",
		PH: "6.7", Nitrogen: "42", Phosphorus: "31", Potassium: "170", OrganicMatter: "3.4", Moisture: "55",
	})
	require.NoError(t, err)
	assert.Equal(t, types.SoilExcellent, f.Status)
	assert.Equal(t, "2025-03-14", f.LastTested.String())

	fields, err := svc.ListFields(ctx)
	require.NoError(t, err)
	require.Len(t, fields, 4)
	assert.Equal(t, "North Plot", fields[3].Name)

	_, err = svc.AddField(ctx, FieldInput{Name: "North Plot", SoilType: "Clay"})
	assert.Equal(t, types.ErrCodeConflictFieldExists, types.CodeOf(err))
}

func TestFieldService_AddField_BlankReadingsAreZero(t *testing.T) {
	svc := newFieldService(t)

	f, err := svc.AddField(context.Background(), FieldInput{Name: "New", SoilType: "Peaty"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, f.Nitrogen)
	assert.Equal(t, types.SoilNeedsAttention, f.Status)
}

func TestFieldService_AddField_Validation(t *testing.T) {
	svc := newFieldService(t)

	tests := []struct {
		name string
		in   FieldInput
		code types.ErrorCode
	}{
		{"missing name", FieldInput{SoilType: "Clay"}, types.ErrCodeValidationMissingField},
		{"missing soil", FieldInput{Name: "X"}, types.ErrCodeValidationMissingField},
		{"unknown soil", FieldInput{Name: "X", SoilType: "Gravel"}, types.ErrCodeValidationInvalidSoilType},
		{"pH above 14", FieldInput{Name: "X", SoilType: "Clay", PH: "14.5"}, types.ErrCodeValidationInvalidReading},
		{"negative nitrogen", FieldInput{Name: "X", SoilType: "Clay", Nitrogen: "-1"}, types.ErrCodeValidationInvalidReading},
		{"text moisture", FieldInput{Name: "X", SoilType: "Clay", Moisture: "damp"}, types.ErrCodeValidationInvalidReading},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddField(context.Background(), tt.in)
			assert.Equal(t, tt.code, types.CodeOf(err))
		})
	}
}

func TestFieldService_DeleteField(t *testing.T) {
	svc := newFieldService(t)
	ctx := context.Background()

	removed, err := svc.DeleteField(ctx, "Field B")
	require.NoError(t, err)
	assert.Equal(t, "Clay", removed.SoilType)

	_, err = svc.DeleteField(ctx, "Field B")
	assert.Equal(t, types.ErrCodeNotFoundField, types.CodeOf(err))
}

func TestLowNutrients(t *testing.T) {
	fields := SampleFields()
	assert.Empty(t, LowNutrients(fields[0]))
	assert.Equal(t, []agronomy.Nutrient{agronomy.Nitrogen, agronomy.Phosphorus, agronomy.Potassium}, LowNutrients(fields[2]))
}
