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

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	jsonOutput bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display every loaded instrument" }
func (*listCmd) Usage() string {
	return `scr list [-json]

  Loads the instruments file and displays every instrument with its derived
  metrics, ranked by valuation index, without applying any criteria.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.jsonOutput, "json", false, "Print the instruments as JSON instead of markdown")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	ranked := screener.Rank(instruments)
	if c.jsonOutput {
		return printJSON(ranked)
	}

	printMarkdown(renderer.InstrumentsMarkdown(ranked, cfg.Currency))
	return subcommands.ExitSuccess
}
