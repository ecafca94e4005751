package screener

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// exportColumns is the output header: the input columns in canonical order,
// then the three computed columns.
var exportColumns = []string{
	colSymbol, colName, colSector,
	colPrice, colEarnings, colDividend, colGrowth, colRisk,
	"eps", "roi", "valuation_index",
}

// exportPrecision is the number of decimals written for numeric cells.
const exportPrecision = 2

// ExportCSV writes instruments to w as delimited rows, in the order given,
// with the computed columns appended after the input columns. Numeric cells
// use a fixed decimal format so the file diffs cleanly between runs.
func ExportCSV(w io.Writer, instruments []Instrument, delimiter rune) error {
	if delimiter == 0 {
		delimiter = ';'
	}
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(exportColumns); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for _, i := range instruments {
		record := []string{
			i.Symbol,
			i.Name,
			i.Sector,
			formatFloat(i.Price, exportPrecision),
			formatFloat(i.Earnings, exportPrecision),
			formatFloat(i.Dividend, exportPrecision),
			formatFloat(float64(i.GrowthPercentage), exportPrecision),
			formatFloat(i.RiskScore, exportPrecision),
			formatFloat(i.EPS, exportPrecision),
			formatFloat(float64(i.ROI), exportPrecision),
			formatFloat(i.ValuationIndex, exportPrecision),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write row for %q: %w", i.Symbol, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV writes instruments to path like ExportCSV, creating the parent
// directory if needed.
func SaveCSV(path string, instruments []Instrument, delimiter rune) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()
	return ExportCSV(f, instruments, delimiter)
}

func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}
