package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/screener"
	"github.com/etnz/screener/renderer"
	"github.com/google/subcommands"
)

// screenCmd holds the flags for the 'screen' subcommand.
type screenCmd struct {
	minIndex   string
	maxRisk    string
	jsonOutput bool
	query      string
	outputFile string
}

func (*screenCmd) Name() string     { return "screen" }
func (*screenCmd) Synopsis() string { return "screen instruments against the valuation criteria" }
func (*screenCmd) Usage() string {
	return `scr screen [-min-index <value>] [-max-risk <value>] [-json | -query <path> | -o <file>]

  Loads the instruments file, keeps the instruments whose valuation index
  and risk score pass the thresholds, and renders them ranked by valuation
  index, highest first.

Usage Examples:
# Screen with the configured thresholds.
$ scr -file data.csv screen

# Lower the valuation bar and export the selection.
$ scr screen -min-index 5 -o selection.csv

# Extract one value from the report.
$ scr screen -query '$.rows[0].symbol'
`
}

func (c *screenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.minIndex, "min-index", "", "Minimum valuation index (default from configuration)")
	f.StringVar(&c.maxRisk, "max-risk", "", "Maximum risk score (default from configuration)")
	f.BoolVar(&c.jsonOutput, "json", false, "Print the report as JSON instead of markdown")
	f.StringVar(&c.query, "query", "", "JSONPath expression evaluated against the JSON report")
	f.StringVar(&c.outputFile, "o", "", "Export the matching instruments to this delimited file")
}

func (c *screenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	criteria, status := resolveCriteria(cfg, c.minIndex, c.maxRisk)
	if status != subcommands.ExitSuccess {
		return status
	}

	instruments, err := LoadInstruments(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading instruments: %v\n", err)
		return subcommands.ExitFailure
	}

	report := screener.NewReport(instruments, criteria)

	switch {
	case c.query != "":
		return printQuery(report, c.query)
	case c.jsonOutput:
		return printJSON(report)
	case c.outputFile != "":
		return exportInstruments(c.outputFile, report.Rows, cfg)
	}

	printMarkdown(renderer.ScreenMarkdown(report, cfg.Currency))
	return subcommands.ExitSuccess
}
