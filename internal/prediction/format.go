package prediction

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ProfitBand is a coarse classification of net profit used to colour output.
type ProfitBand string

const (
	BandStrong   ProfitBand = "strong"
	BandModerate ProfitBand = "moderate"
	BandMarginal ProfitBand = "marginal"
	BandLoss     ProfitBand = "loss"
)

// BandFor classifies a net profit amount.
func BandFor(netProfit float64) ProfitBand {
	switch {
	case netProfit > 50000:
		return BandStrong
	case netProfit > 20000:
		return BandModerate
	case netProfit > 0:
		return BandMarginal
	default:
		return BandLoss
	}
}

// View is a Result rounded for presentation: yields to one decimal, money to
// whole currency units, margin to one decimal. Formatted strings carry the
// currency symbol and thousands separators.
type View struct {
	Crop           string   `json:"crop" yaml:"crop"`
	Variety        string   `json:"variety" yaml:"variety"`
	SoilType       string   `json:"soil_type" yaml:"soil_type"`
	Season         string   `json:"season" yaml:"season"`
	InvestmentTier string   `json:"investment_level" yaml:"investment_level"`
	AreaAcres      float64  `json:"area_acres" yaml:"area_acres"`
	ExpectedYield  float64  `json:"expected_yield_tons" yaml:"expected_yield_tons"`
	YieldPerAcre   float64  `json:"yield_per_acre_tons" yaml:"yield_per_acre_tons"`
	TotalIncome    float64  `json:"total_income" yaml:"total_income"`
	TotalExpenses  float64  `json:"total_expenses" yaml:"total_expenses"`
	NetProfit      float64  `json:"net_profit" yaml:"net_profit"`
	ProfitMargin   *float64 `json:"profit_margin_percent" yaml:"profit_margin_percent"`
	Confidence     string   `json:"confidence" yaml:"confidence"`
	Band           string   `json:"profit_band" yaml:"profit_band"`

	Formatted FormattedView `json:"formatted" yaml:"formatted"`

	Risks           []string `json:"risks" yaml:"risks"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// FormattedView holds display strings such as "₹90,250" and "3.0%".
type FormattedView struct {
	ExpectedYield string `json:"expected_yield" yaml:"expected_yield"`
	YieldPerAcre  string `json:"yield_per_acre" yaml:"yield_per_acre"`
	TotalIncome   string `json:"total_income" yaml:"total_income"`
	TotalExpenses string `json:"total_expenses" yaml:"total_expenses"`
	NetProfit     string `json:"net_profit" yaml:"net_profit"`
	ProfitMargin  string `json:"profit_margin" yaml:"profit_margin"`
}

// Display rounds r for presentation. An undefined margin is rendered as "n/a"
// and a nil ProfitMargin.
func Display(r *Result, currency string) View {
	v := View{
		Crop:            r.Crop,
		Variety:         r.Variety,
		SoilType:        r.SoilType,
		Season:          r.Season,
		InvestmentTier:  string(r.InvestmentTier),
		AreaAcres:       r.AreaAcres,
		ExpectedYield:   RoundTo(r.ExpectedYield, 1),
		YieldPerAcre:    RoundTo(r.YieldPerAcre, 1),
		TotalIncome:     RoundTo(r.TotalIncome, 0),
		TotalExpenses:   RoundTo(r.TotalExpenses, 0),
		NetProfit:       RoundTo(r.NetProfit, 0),
		Confidence:      r.Confidence,
		Band:            string(BandFor(r.NetProfit)),
		Risks:           r.Risks,
		Recommendations: r.Recommendations,
	}

	margin := "n/a"
	if r.ProfitMarginDefined {
		m := RoundTo(r.ProfitMargin, 1)
		v.ProfitMargin = &m
		margin = strconv.FormatFloat(m, 'f', 1, 64) + "%"
	}

	v.Formatted = FormattedView{
		ExpectedYield: strconv.FormatFloat(v.ExpectedYield, 'f', 1, 64) + " tons",
		YieldPerAcre:  strconv.FormatFloat(v.YieldPerAcre, 'f', 1, 64) + " tons/acre",
		TotalIncome:   FormatMoney(r.TotalIncome, currency),
		TotalExpenses: FormatMoney(r.TotalExpenses, currency),
		NetProfit:     FormatMoney(r.NetProfit, currency),
		ProfitMargin:  margin,
	}
	return v
}

// RoundTo rounds x half away from zero to the given number of decimals.
func RoundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// FormatMoney renders an amount rounded to whole units with thousands
// separators, e.g. FormatMoney(-1234.6, "₹") == "-₹1,235".
func FormatMoney(amount float64, currency string) string {
	rounded := math.Round(amount)
	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	digits := strconv.FormatFloat(math.Abs(rounded), 'f', 0, 64)

	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return fmt.Sprintf("%s%s%s", sign, currency, b.String())
}
