package screener

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Canonical column names recognized in the input header. "category" is
// accepted as an alias for "sector". Columns outside this set are ignored,
// which keeps a previously exported file (with its appended computed columns)
// loadable.
const (
	colSymbol   = "symbol"
	colName     = "name"
	colSector   = "sector"
	colPrice    = "price"
	colEarnings = "earnings"
	colDividend = "dividend"
	colGrowth   = "growth_percentage"
	colRisk     = "risk_score"
)

// optionalDefaults is the single defaulting policy for blank or absent
// optional numeric fields, consulted once per row at parse time.
var optionalDefaults = map[string]float64{
	colDividend: 0.0,
	colGrowth:   0.0,
	colRisk:     1.0,
}

// DefaultSector is substituted when an input row carries no sector.
const DefaultSector = "unknown"

// A Loader parses delimited tabular input into annotated Instruments.
type Loader struct {
	delimiter rune
	log       zerolog.Logger
}

// NewLoader returns a Loader reading fields separated by delimiter (',' or
// ';'; zero means ';'). Skipped rows are reported on log.
func NewLoader(delimiter rune, log zerolog.Logger) *Loader {
	if delimiter == 0 {
		delimiter = ';'
	}
	return &Loader{delimiter: delimiter, log: log}
}

// Load opens path and reads it like Read. An unreadable path is reported as a
// *SourceUnavailableError.
func (l *Loader) Load(path string) ([]Instrument, []RowError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &SourceUnavailableError{Path: path, Err: err}
	}
	defer f.Close()
	return l.Read(f)
}

// Read parses a header plus one row per instrument from r.
//
// The header must contain an identity column (symbol or name) plus price and
// earnings; otherwise Read fails with a *SchemaError and no rows. Rows that
// fail numeric coercion, or whose price is not positive, are skipped and
// reported in the returned RowError slice; they never abort the batch. The
// accepted instruments keep their input order and leave fully annotated.
//
// An input with a header and no data rows is valid and yields no instruments
// and no error.
func (l *Loader) Read(r io.Reader) ([]Instrument, []RowError, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.delimiter
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, &SchemaError{Missing: []string{colSymbol + " or " + colName, colPrice, colEarnings}}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("cannot read input header: %w", err)
	}

	cols, schemaErr := mapColumns(header)
	if schemaErr != nil {
		return nil, nil, schemaErr
	}

	var instruments []Instrument
	var skipped []RowError
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped = append(skipped, l.skip(row, fmt.Sprintf("malformed row: %v", err)))
			continue
		}

		inst, reason := parseRow(cols, record)
		if reason != "" {
			skipped = append(skipped, l.skip(row, reason))
			continue
		}
		inst.Annotate()
		instruments = append(instruments, inst)
	}

	l.log.Debug().
		Int("loaded", len(instruments)).
		Int("skipped", len(skipped)).
		Msg("input parsed")
	return instruments, skipped, nil
}

// skip records and logs one rejected row.
func (l *Loader) skip(row int, reason string) RowError {
	e := RowError{Row: row, Reason: reason}
	l.log.Warn().Int("row", row).Str("reason", reason).Msg("skipping row")
	return e
}

// mapColumns resolves the header into a canonical-name to field-index map and
// validates that the required columns are present.
func mapColumns(header []string) (map[string]int, *SchemaError) {
	cols := make(map[string]int, len(header))
	found := make([]string, 0, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		name := strings.ToLower(strings.TrimSpace(h))
		if name == "" {
			continue
		}
		found = append(found, name)
		if name == "category" {
			name = colSector
		}
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	var missing []string
	_, hasSymbol := cols[colSymbol]
	_, hasName := cols[colName]
	if !hasSymbol && !hasName {
		missing = append(missing, colSymbol+" or "+colName)
	}
	for _, required := range []string{colPrice, colEarnings} {
		if _, ok := cols[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing, Found: found}
	}
	return cols, nil
}

// parseRow builds one Instrument from a record. A non-empty reason means the
// row must be skipped.
func parseRow(cols map[string]int, record []string) (Instrument, string) {
	field := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	price, err := requiredFloat(colPrice, field(colPrice))
	if err != nil {
		return Instrument{}, err.Error()
	}
	if price <= 0 {
		return Instrument{}, fmt.Sprintf("price %s is not positive", field(colPrice))
	}
	earnings, err := requiredFloat(colEarnings, field(colEarnings))
	if err != nil {
		return Instrument{}, err.Error()
	}
	dividend, err := optionalFloat(colDividend, field(colDividend))
	if err != nil {
		return Instrument{}, err.Error()
	}
	growth, err := optionalFloat(colGrowth, field(colGrowth))
	if err != nil {
		return Instrument{}, err.Error()
	}
	risk, err := optionalFloat(colRisk, field(colRisk))
	if err != nil {
		return Instrument{}, err.Error()
	}

	symbol, name := field(colSymbol), field(colName)
	if symbol == "" && name == "" {
		return Instrument{}, "missing symbol and name"
	}
	if symbol == "" {
		symbol = name
	}
	if name == "" {
		name = symbol
	}
	sector := field(colSector)
	if sector == "" {
		sector = DefaultSector
	}

	return Instrument{
		Symbol:           symbol,
		Name:             name,
		Sector:           sector,
		Price:            price,
		Earnings:         earnings,
		Dividend:         dividend,
		GrowthPercentage: Percent(growth),
		RiskScore:        risk,
	}, ""
}

func requiredFloat(name, s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %s %q", name, s)
	}
	return v, nil
}

func optionalFloat(name, s string) (float64, error) {
	if s == "" {
		return optionalDefaults[name], nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %s %q", name, s)
	}
	return v, nil
}
