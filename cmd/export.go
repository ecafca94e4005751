package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/screener"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	minIndex   string
	maxRisk    string
	outputFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the screened instruments to a delimited file" }
func (*exportCmd) Usage() string {
	return `scr export -o <file> [-min-index <value>] [-max-risk <value>]

  Screens the instruments file and writes the matching instruments to a
  delimited file, input columns first, then the computed eps, roi and
  valuation_index columns. The written file loads back unchanged.

Usage Examples:
# Export the default selection.
$ scr -file data.csv export -o selection.csv
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.minIndex, "min-index", "", "Minimum valuation index (default from configuration)")
	f.StringVar(&c.maxRisk, "max-risk", "", "Maximum risk score (default from configuration)")
	f.StringVar(&c.outputFile, "o", "", "File to write the selection to (required)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -o is required\n")
		return subcommands.ExitUsageError
	}

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

	return exportInstruments(c.outputFile, screener.Screen(instruments, criteria), cfg)
}

// exportInstruments writes instruments to path in the configured dialect.
func exportInstruments(path string, instruments []screener.Instrument, cfg *screener.Config) subcommands.ExitStatus {
	if err := screener.SaveCSV(path, instruments, cfg.DelimiterRune()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", path, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Exported %d instruments to %s\n", len(instruments), path)
	return subcommands.ExitSuccess
}
