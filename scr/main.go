package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/screener/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"screen": {Flags: map[string]complete.Predictor{
				"min-index": predict.Nothing,
				"max-risk":  predict.Nothing,
				"json":      predict.Nothing,
				"query":     predict.Nothing,
				"o":         predict.Files("*.csv"),
			}},
			"export": {Flags: map[string]complete.Predictor{
				"min-index": predict.Nothing,
				"max-risk":  predict.Nothing,
				"o":         predict.Files("*.csv"),
			}},
			"list":  {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"stats": {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"topic": {Args: predict.Set{"readme", "file-format", "metrics", "screening", "configuration", "*"}},
		},
		Flags: map[string]complete.Predictor{
			"file":      predict.Files("*.csv"),
			"delimiter": predict.Set{";", ","},
			"config":    predict.Files("*.toml"),
			"currency":  predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"log-level": predict.Set{"debug", "info", "warn", "error"},
		},
	}
}

func main() {
	// Answers shell completion requests and exits before anything else runs.
	completion().Complete("scr")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
