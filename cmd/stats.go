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

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	jsonOutput bool
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display distribution statistics for the loaded data" }
func (*statsCmd) Usage() string {
	return `scr stats [-json]

  Loads the instruments file and displays average, median, minimum and
  maximum for roi, valuation index and risk score over the whole data set.
`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOutput, "json", false, "Print the statistics as JSON instead of markdown")
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}

	instruments, err := LoadInstruments(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading instruments: %v\n", err)
		return subcommands.ExitFailure
	}

	stats := screener.NewStatistics(instruments)
	if c.jsonOutput {
		return printJSON(stats)
	}

	printMarkdown(renderer.StatisticsMarkdown(stats))
	return subcommands.ExitSuccess
}
