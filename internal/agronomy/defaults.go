package agronomy

// defaultProfiles is the built-in knowledge table. Figures are per acre
// (yield in tons, expenses in currency) and per ton (price):
//
//	| Crop  | Soil  | Yield avg | Price avg | Low    | Medium | High   | Premium |
//	|-------|-------|-----------|-----------|--------|--------|--------|---------|
//	| Rice  | Loamy | 3.8       | 10000     | 25000  | 35000  | 45000  | 60000   |
//	| Rice  | Clay  | 4.1       | 10000     | 28000  | 38000  | 48000  | 65000   |
//	| Wheat | Loamy | 3.1       | 20000     | 20000  | 28000  | 38000  | 50000   |
//	| Corn  | Sandy | 4.8       | 16500     | 22000  | 32000  | 42000  | 55000   |
var defaultProfiles = map[string]map[string]Profile{
	"Rice": {
		"Loamy": {
			Yield: Range{Min: 3.2, Max: 4.5, Avg: 3.8},
			Price: Range{Min: 8500, Max: 12000, Avg: 10000},
			Expenses: map[InvestmentTier]float64{
				TierLow: 25000, TierMedium: 35000, TierHigh: 45000, TierPremium: 60000,
			},
			Risks:           []string{"Weather dependency", "Market price fluctuation"},
			Recommendations: []string{"Use certified seeds", "Proper water management", "Timely harvesting"},
		},
		"Clay": {
			Yield: Range{Min: 3.5, Max: 4.8, Avg: 4.1},
			Price: Range{Min: 8500, Max: 12000, Avg: 10000},
			Expenses: map[InvestmentTier]float64{
				TierLow: 28000, TierMedium: 38000, TierHigh: 48000, TierPremium: 65000,
			},
			Risks:           []string{"Drainage issues", "Disease susceptibility"},
			Recommendations: []string{"Improve drainage", "Disease monitoring", "Soil amendments"},
		},
	},
	"Wheat": {
		"Loamy": {
			Yield: Range{Min: 2.8, Max: 3.5, Avg: 3.1},
			Price: Range{Min: 18000, Max: 22000, Avg: 20000},
			Expenses: map[InvestmentTier]float64{
				TierLow: 20000, TierMedium: 28000, TierHigh: 38000, TierPremium: 50000,
			},
			Risks:           []string{"Pest attacks", "Temperature fluctuations"},
			Recommendations: []string{"Pest management", "Temperature monitoring", "Quality seeds"},
		},
	},
	"Corn": {
		"Sandy": {
			Yield: Range{Min: 4.2, Max: 5.5, Avg: 4.8},
			Price: Range{Min: 15000, Max: 18000, Avg: 16500},
			Expenses: map[InvestmentTier]float64{
				TierLow: 22000, TierMedium: 32000, TierHigh: 42000, TierPremium: 55000,
			},
			Risks:           []string{"Water stress", "Nutrient deficiency"},
			Recommendations: []string{"Irrigation planning", "Fertilizer management", "Hybrid varieties"},
		},
	},
}

// DefaultTable returns a Table backed by the built-in profiles. The returned
// table is a private copy; callers cannot mutate the package defaults.
func DefaultTable() *Table {
	t, err := NewTable(defaultProfiles)
	if err != nil {
		// The literal above is covered by tests; failure here is a programming error.
		panic("agronomy: invalid built-in table: " + err.Error())
	}
	return t
}
