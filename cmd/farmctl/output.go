package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"farmdesk/internal/prediction"
	"farmdesk/internal/types"
)

const (
	outputHuman = "human"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// render writes v as JSON or YAML, or calls human for the default format.
func render(w io.Writer, format string, v any, human func(io.Writer)) error {
	switch format {
	case outputJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case outputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(w, string(out))
		return err
	default:
		human(w)
		return nil
	}
}

func bandColor(band prediction.ProfitBand) *color.Color {
	switch band {
	case prediction.BandStrong:
		return color.New(color.FgGreen, color.Bold)
	case prediction.BandModerate:
		return color.New(color.FgGreen)
	case prediction.BandMarginal:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

func severityColor(s types.Severity) *color.Color {
	switch s {
	case types.SeverityCritical:
		return color.New(color.FgRed, color.Bold)
	case types.SeverityHigh:
		return color.New(color.FgRed)
	case types.SeverityMedium:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func displayPrediction(w io.Writer, v prediction.View) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(w, "%s (%s) on %s soil, %s season\n", v.Crop, v.Variety, v.SoilType, v.Season)
	fmt.Fprintf(w, "   Area:            %.2f acres\n", v.AreaAcres)
	fmt.Fprintf(w, "   Investment:      %s (confidence %s)\n", v.InvestmentTier, v.Confidence)
	fmt.Fprintf(w, "   Expected yield:  %s (%s)\n", v.Formatted.ExpectedYield, v.Formatted.YieldPerAcre)
	fmt.Fprintf(w, "   Total income:    %s\n", v.Formatted.TotalIncome)
	fmt.Fprintf(w, "   Total expenses:  %s\n", v.Formatted.TotalExpenses)
	bandColor(prediction.ProfitBand(v.Band)).Fprintf(w, "   Net profit:      %s (%s margin)\n", v.Formatted.NetProfit, v.Formatted.ProfitMargin)

	if len(v.Risks) > 0 {
		color.New(color.FgYellow, color.Bold).Fprintln(w, "\n⚠️  RISKS:")
		for i, r := range v.Risks {
			fmt.Fprintf(w, "   %d. %s\n", i+1, r)
		}
	}
	if len(v.Recommendations) > 0 {
		color.New(color.FgGreen, color.Bold).Fprintln(w, "\n💡 RECOMMENDATIONS:")
		for i, r := range v.Recommendations {
			fmt.Fprintf(w, "   %d. %s\n", i+1, r)
		}
	}
}

func displayComparison(w io.Writer, views []prediction.View) {
	if len(views) == 0 {
		return
	}
	first := views[0]
	color.New(color.FgCyan, color.Bold).Fprintf(w, "%s on %s soil, %.2f acres\n\n", first.Crop, first.SoilType, first.AreaAcres)
	fmt.Fprintf(w, "   %-8s  %-12s  %-14s  %-14s  %-14s  %s\n", "TIER", "YIELD", "INCOME", "EXPENSES", "PROFIT", "MARGIN")
	fmt.Fprintf(w, "   %s\n", strings.Repeat("─", 78))
	for _, v := range views {
		row := fmt.Sprintf("   %-8s  %-12s  %-14s  %-14s  %-14s  %s\n",
			v.InvestmentTier, v.Formatted.ExpectedYield, v.Formatted.TotalIncome,
			v.Formatted.TotalExpenses, v.Formatted.NetProfit, v.Formatted.ProfitMargin)
		bandColor(prediction.ProfitBand(v.Band)).Fprint(w, row)
	}
}

func displayDiseases(w io.Writer, diseases []*types.Disease) {
	if len(diseases) == 0 {
		fmt.Fprintln(w, "No diseases match the filter.")
		return
	}
	for _, d := range diseases {
		color.New(color.Bold).Fprintf(w, "%d. %s", d.ID, d.Name)
		fmt.Fprintf(w, " (%s, %s) ", d.Crop, d.Type)
		severityColor(d.Severity).Fprintln(w, strings.ToUpper(string(d.Severity)))
		if len(d.Symptoms) > 0 {
			fmt.Fprintf(w, "   Symptoms:  %s\n", strings.Join(d.Symptoms, "; "))
		}
		if len(d.Treatment) > 0 {
			fmt.Fprintf(w, "   Treatment: %s\n", strings.Join(d.Treatment, "; "))
		}
		fmt.Fprintln(w)
	}
}
