package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// createTempData writes a temporary instruments file and returns its path.
func createTempData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return path
}

const testData = `symbol;name;sector;price;earnings;dividend;growth_percentage;risk_score
HIGH;Highmark;tech;150.00;5.61;0.92;12.5;2.3
LOW;Lowline;utilities;4.00;1.00;0.00;2.00;5.00
OUT;Outlier;energy;100.00;1.00;0.00;1.00;9.00
`

func TestExportWritesSelection(t *testing.T) {
	tempInput := createTempData(t, testData)
	tempOutput := filepath.Join(t.TempDir(), "selection.csv")

	cmd := &exportCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("o", tempOutput)

	// Override the global data file for the test
	oldDataFile := dataFile
	dataFile = &tempInput
	defer func() { dataFile = oldDataFile }()

	status := cmd.Execute(context.Background(), f)

	if status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}

	got, err := os.ReadFile(tempOutput)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	// OUT fails the valuation threshold, the survivors come out ranked.
	want := `symbol;name;sector;price;earnings;dividend;growth_percentage;risk_score;eps;roi;valuation_index
HIGH;Highmark;tech;150.00;5.61;0.92;12.50;2.30;5.61;4.35;23.66
LOW;Lowline;utilities;4.00;1.00;0.00;2.00;5.00;1.00;25.00;10.00
`
	if string(got) != want {
		t.Errorf("Export mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestExportAppliesThresholdFlags(t *testing.T) {
	tempInput := createTempData(t, testData)
	tempOutput := filepath.Join(t.TempDir(), "selection.csv")

	cmd := &exportCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	f.Set("o", tempOutput)
	f.Set("max-risk", "3")

	oldDataFile := dataFile
	dataFile = &tempInput
	defer func() { dataFile = oldDataFile }()

	status := cmd.Execute(context.Background(), f)

	if status != subcommands.ExitSuccess {
		t.Errorf("Expected ExitSuccess, got %v", status)
	}

	got, err := os.ReadFile(tempOutput)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	want := `symbol;name;sector;price;earnings;dividend;growth_percentage;risk_score;eps;roi;valuation_index
HIGH;Highmark;tech;150.00;5.61;0.92;12.50;2.30;5.61;4.35;23.66
`
	if string(got) != want {
		t.Errorf("Export mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestExportRequiresOutput(t *testing.T) {
	cmd := &exportCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	status := cmd.Execute(context.Background(), f)

	if status != subcommands.ExitUsageError {
		t.Errorf("Expected ExitUsageError, got %v", status)
	}
}
