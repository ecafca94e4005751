// Package cmd implements the CLI application to screen instruments.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/screener"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&screenCmd{}, "screening")
	c.Register(&exportCmd{}, "screening")

	c.Register(&listCmd{}, "data")
	c.Register(&statsCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dataFile   = flag.String("file", "data.csv", "Path to the delimited instruments file")
	delimiter  = flag.String("delimiter", "", "Field delimiter, \";\" or \",\" (default from configuration)")
	configFile = flag.String("config", "", "Path to a TOML configuration file")
	currency   = flag.String("currency", "", "Display currency for report prices (default from configuration)")
	logLevel   = flag.String("log-level", "", "Log level: debug, info, warn or error (default from configuration)")
)

// LoadConfig resolves the effective configuration: defaults, config file,
// environment, then the global flag overrides on top.
func LoadConfig() (*screener.Config, error) {
	cfg, err := screener.LoadConfig(*configFile)
	if err != nil {
		return nil, err
	}
	if *delimiter != "" {
		cfg.Delimiter = *delimiter
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInstruments loads and annotates the instruments file with the
// configured dialect. Skipped rows are reported by the loader's logger.
func LoadInstruments(cfg *screener.Config) ([]screener.Instrument, error) {
	loader := screener.NewLoader(cfg.DelimiterRune(), screener.NewLogger(cfg.LogLevel))
	instruments, _, err := loader.Load(*dataFile)
	if err != nil {
		return nil, err
	}
	return instruments, nil
}

// resolveCriteria starts from the configured thresholds and applies the
// command's flag overrides on top.
func resolveCriteria(cfg *screener.Config, minIndex, maxRisk string) (screener.Criteria, subcommands.ExitStatus) {
	criteria := cfg.Criteria()
	if minIndex != "" {
		v, err := strconv.ParseFloat(minIndex, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -min-index %q: %v\n", minIndex, err)
			return criteria, subcommands.ExitUsageError
		}
		criteria.MinValuationIndex = v
	}
	if maxRisk != "" {
		v, err := strconv.ParseFloat(maxRisk, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -max-risk %q: %v\n", maxRisk, err)
			return criteria, subcommands.ExitUsageError
		}
		criteria.MaxRiskScore = v
	}
	return criteria, subcommands.ExitSuccess
}
