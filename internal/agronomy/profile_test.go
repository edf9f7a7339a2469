package agronomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmdesk/internal/types"
)

func validProfile() Profile {
	return Profile{
		Yield: Range{Min: 1, Max: 3, Avg: 2},
		Price: Range{Min: 100, Max: 300, Avg: 200},
		Expenses: map[InvestmentTier]float64{
			TierLow: 10, TierMedium: 20, TierHigh: 30, TierPremium: 40,
		},
		Risks:           []string{"Frost"},
		Recommendations: []string{"Mulch"},
	}
}

func TestDefaultTable_Contents(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, []string{"Corn", "Rice", "Wheat"}, table.Crops())
	assert.Equal(t, []string{"Clay", "Loamy"}, table.Soils("Rice"))
	assert.Equal(t, 4, table.Len())

	p, ok := table.Profile("Rice", "Loamy")
	require.True(t, ok)
	assert.Equal(t, 3.8, p.Yield.Avg)
	assert.Equal(t, 10000.0, p.Price.Avg)
	assert.Equal(t, 35000.0, p.Expenses[TierMedium])
	assert.Equal(t, []string{"Weather dependency", "Market price fluctuation"}, p.Risks)
}

func TestTable_UnlistedPairIsAbsent(t *testing.T) {
	table := DefaultTable()

	_, ok := table.Profile("Wheat", "Sandy")
	assert.False(t, ok)
	_, ok = table.Profile("Banana", "Loamy")
	assert.False(t, ok)
	assert.False(t, table.HasCrop("Banana"))
	assert.Nil(t, table.Soils("Banana"))
}

func TestTable_LookupTrimsWhitespace(t *testing.T) {
	table := DefaultTable()

	_, ok := table.Profile("  Corn ", " Sandy")
	assert.True(t, ok)
	assert.True(t, table.HasCrop("Wheat "))
}

func TestTable_ProfileIsACopy(t *testing.T) {
	table := DefaultTable()

	p, ok := table.Profile("Rice", "Loamy")
	require.True(t, ok)
	p.Risks[0] = "mutated"
	p.Expenses[TierLow] = -1

	again, _ := table.Profile("Rice", "Loamy")
	assert.Equal(t, "Weather dependency", again.Risks[0])
	assert.Equal(t, 25000.0, again.Expenses[TierLow])
}

func TestNewTable_CopiesInput(t *testing.T) {
	input := map[string]map[string]Profile{"Millet": {"Sandy": validProfile()}}
	table, err := NewTable(input)
	require.NoError(t, err)

	input["Millet"]["Sandy"].Risks[0] = "changed"
	delete(input, "Millet")

	p, ok := table.Profile("Millet", "Sandy")
	require.True(t, ok)
	assert.Equal(t, "Frost", p.Risks[0])
}

func TestNewTable_AllowsZeroPrice(t *testing.T) {
	p := validProfile()
	p.Price = Range{}

	_, err := NewTable(map[string]map[string]Profile{"Fallow": {"Clay": p}})
	assert.NoError(t, err)
}

func TestNewTable_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Profile)
		crops  func(p Profile) map[string]map[string]Profile
	}{
		{
			name:   "missing tier",
			mutate: func(p *Profile) { delete(p.Expenses, TierPremium) },
		},
		{
			name:   "unknown tier",
			mutate: func(p *Profile) { p.Expenses["Luxury"] = 99 },
		},
		{
			name:   "negative expense",
			mutate: func(p *Profile) { p.Expenses[TierLow] = -5 },
		},
		{
			name:   "avg above max",
			mutate: func(p *Profile) { p.Yield.Avg = 10 },
		},
		{
			name:   "min above max",
			mutate: func(p *Profile) { p.Price = Range{Min: 5, Max: 1, Avg: 3} },
		},
		{
			name:   "negative price",
			mutate: func(p *Profile) { p.Price = Range{Min: -1, Max: 1, Avg: 0} },
		},
		{
			name: "empty crop name",
			crops: func(p Profile) map[string]map[string]Profile {
				return map[string]map[string]Profile{" ": {"Clay": p}}
			},
		},
		{
			name: "empty soil name",
			crops: func(p Profile) map[string]map[string]Profile {
				return map[string]map[string]Profile{"Rice": {"": p}}
			},
		},
		{
			name: "crop repeated once trimmed",
			crops: func(p Profile) map[string]map[string]Profile {
				return map[string]map[string]Profile{"Rice": {"Clay": p}, "Rice ": {"Loamy": p}}
			},
		},
		{
			name: "soil repeated once trimmed",
			crops: func(p Profile) map[string]map[string]Profile {
				return map[string]map[string]Profile{"Rice": {"Clay": p, " Clay": p}}
			},
		},
		{
			name: "crop without soils",
			crops: func(Profile) map[string]map[string]Profile {
				return map[string]map[string]Profile{"Rice": {}}
			},
		},
		{
			name: "no crops",
			crops: func(Profile) map[string]map[string]Profile {
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			if tt.mutate != nil {
				tt.mutate(&p)
			}
			crops := map[string]map[string]Profile{"Rice": {"Clay": p}}
			if tt.crops != nil {
				crops = tt.crops(p)
			}

			_, err := NewTable(crops)
			require.Error(t, err)
			assert.Equal(t, types.ErrCodeInternalTable, types.CodeOf(err))
		})
	}
}

func TestParseTier(t *testing.T) {
	for _, tier := range Tiers() {
		got, ok := ParseTier(" " + string(tier) + " ")
		assert.True(t, ok)
		assert.Equal(t, tier, got)
	}

	_, ok := ParseTier("premium")
	assert.False(t, ok, "tier names are case-sensitive")
	_, ok = ParseTier("")
	assert.False(t, ok)
}
