package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"farmdesk/internal/agronomy"
	"farmdesk/internal/prediction"
	"farmdesk/internal/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// execute runs farmctl with args and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

const singleProfileTable = `crops:
  Millet:
    Sandy:
      yield: {min: 1, max: 2, avg: 1.5}
      price: {min: 20000, max: 30000, avg: 25000}
      expenses: {Low: 10000, Medium: 15000, High: 20000, Premium: 30000}
      risks: [Birds]
      recommendations: [Net the field]
`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPredictHuman(t *testing.T) {
	out, _, err := execute(t, "predict", "--crop", "Rice", "--soil", "Loamy", "--area", "2.5", "--tier", "Medium")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	for _, want := range []string{"Rice (Standard) on Loamy soil", "Total expenses:  ₹87,500", "Net profit:      ₹2,750", "RISKS", "Use certified seeds"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPredictJSON(t *testing.T) {
	out, _, err := execute(t, "predict", "-o", "json", "--crop", "Rice", "--soil", "Loamy", "--area", "2.5", "--tier", "Medium", "--currency", "$")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	var view prediction.View
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if view.NetProfit != 2750 {
		t.Errorf("net profit = %v, want 2750", view.NetProfit)
	}
	if view.Formatted.TotalIncome != "$90,250" {
		t.Errorf("formatted income = %q", view.Formatted.TotalIncome)
	}
	if view.Band != string(prediction.BandMarginal) {
		t.Errorf("band = %q", view.Band)
	}
}

func TestPredictYAML(t *testing.T) {
	out, _, err := execute(t, "predict", "-o", "yaml", "--crop", "Wheat", "--soil", "Loamy", "--area", "1", "--tier", "Low")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if doc["crop"] != "Wheat" || doc["investment_level"] != "Low" {
		t.Errorf("doc = %v", doc)
	}
}

func TestPredictValidationError(t *testing.T) {
	_, _, err := execute(t, "predict", "--crop", "Rice")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := types.CodeOf(err); got != types.ErrCodeValidationMissingField {
		t.Errorf("code = %q", got)
	}
	if msg := userMessage(err); msg != "Please fill in all required fields" {
		t.Errorf("message = %q", msg)
	}
}

func TestCompareJSON(t *testing.T) {
	out, _, err := execute(t, "compare", "-o", "json", "--crop", "Corn", "--soil", "Sandy", "--area", "4")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}

	var views []prediction.View
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(views) != 4 {
		t.Fatalf("got %d views, want 4", len(views))
	}
	for i, tier := range agronomy.Tiers() {
		if views[i].InvestmentTier != string(tier) {
			t.Errorf("view %d tier = %q, want %q", i, views[i].InvestmentTier, tier)
		}
	}
}

func TestCompareHuman(t *testing.T) {
	out, _, err := execute(t, "compare", "--crop", "Corn", "--soil", "Sandy", "--area", "4")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, tier := range []string{"Low", "Medium", "High", "Premium"} {
		if !strings.Contains(out, tier) {
			t.Errorf("output missing tier %s:\n%s", tier, out)
		}
	}
}

func TestProfilesFromTableFile(t *testing.T) {
	path := writeTable(t, singleProfileTable)

	out, _, err := execute(t, "profiles", "--table", path)
	if err != nil {
		t.Fatalf("profiles: %v", err)
	}
	if !strings.Contains(out, "Millet") || !strings.Contains(out, "Sandy") {
		t.Errorf("output = %s", out)
	}
	if strings.Contains(out, "Rice") {
		t.Errorf("built-in table leaked into output: %s", out)
	}

	out, _, err = execute(t, "predict", "--table", path, "-o", "json", "--crop", "Millet", "--soil", "Sandy", "--area", "2", "--tier", "Low")
	if err != nil {
		t.Fatalf("predict with table: %v", err)
	}
	var view prediction.View
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatal(err)
	}
	if view.TotalExpenses != 20000 {
		t.Errorf("total expenses = %v, want 20000", view.TotalExpenses)
	}
}

func TestProfilesYAMLRoundTrips(t *testing.T) {
	out, _, err := execute(t, "profiles", "-o", "yaml")
	if err != nil {
		t.Fatalf("profiles: %v", err)
	}
	table, err := agronomy.ParseTable([]byte(out))
	if err != nil {
		t.Fatalf("ParseTable: %v\n%s", err, out)
	}
	if table.Len() != agronomy.DefaultTable().Len() {
		t.Errorf("profiles = %d, want %d", table.Len(), agronomy.DefaultTable().Len())
	}
}

func TestBadTable(t *testing.T) {
	path := writeTable(t, "crops:\n  Rice:\n    Loamy:\n      colour: green\n")
	if _, _, err := execute(t, "profiles", "--table", path); err == nil {
		t.Fatal("expected an error for an invalid table")
	}
}

func TestDiseases(t *testing.T) {
	out, _, err := execute(t, "diseases", "-o", "json", "--crop", "Rice")
	if err != nil {
		t.Fatalf("diseases: %v", err)
	}
	var got []types.Disease
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Leaf Blast" {
		t.Errorf("diseases = %+v", got)
	}

	out, _, err = execute(t, "diseases", "--search", "nothing-matches-this")
	if err != nil {
		t.Fatalf("diseases: %v", err)
	}
	if !strings.Contains(out, "No diseases match") {
		t.Errorf("output = %s", out)
	}

	if _, _, err := execute(t, "diseases", "--severity", "Extreme"); err == nil {
		t.Error("expected an error for an unknown severity")
	}
}

func TestUnknownOutputFormat(t *testing.T) {
	_, _, err := execute(t, "profiles", "-o", "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("err = %v", err)
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := writeTable(t, singleProfileTable)
	_, stderr, err := execute(t, "profiles", "-v", "--table", path)
	if err != nil {
		t.Fatalf("profiles: %v", err)
	}
	if !strings.Contains(stderr, "loaded agronomy table") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestUserMessage(t *testing.T) {
	appErr := types.NewAppError(types.ErrCodeValidationInvalidArea, "Area must be a positive number", errors.New("strconv: bad"))
	if got := userMessage(appErr); got != "Area must be a positive number" {
		t.Errorf("userMessage(AppError) = %q", got)
	}
	if got := userMessage(errors.New("boom")); got != "boom" {
		t.Errorf("userMessage(plain) = %q", got)
	}
}

func TestVersionReportsTableSource(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "farmctl version dev") || !strings.Contains(out, "agronomy table: built-in") {
		t.Errorf("output = %q", out)
	}

	path := writeTable(t, singleProfileTable)
	out, _, err = execute(t, "version", "--table", path)
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "agronomy table: "+path) {
		t.Errorf("output = %q", out)
	}
}
