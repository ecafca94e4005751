package screener

import (
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the run settings shared by every command: the screening
// thresholds, the input dialect and the display options.
type Config struct {
	MinValuationIndex float64 `toml:"min_valuation_index" envconfig:"MIN_VALUATION_INDEX"`
	MaxRiskScore      float64 `toml:"max_risk_score" envconfig:"MAX_RISK_SCORE"`
	Delimiter         string  `toml:"delimiter" envconfig:"DELIMITER"`
	Currency          string  `toml:"currency" envconfig:"CURRENCY"`
	LogLevel          string  `toml:"log_level" envconfig:"LOG_LEVEL"`
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		MinValuationIndex: 10.0,
		MaxRiskScore:      5.0,
		Delimiter:         ";",
		Currency:          "USD",
		LogLevel:          "warn",
	}
}

// LoadConfig builds the effective configuration: defaults, then each existing
// TOML file in order (later files override earlier ones), then SCR_-prefixed
// environment variables on top.
func LoadConfig(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read config file %q: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("cannot parse config file %q: %w", path, err)
		}
	}

	if err := envconfig.Process("scr", cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the delimiter and corrects an unknown display currency to
// USD. Callers applying their own overrides must validate again.
func (c *Config) Validate() error {
	if c.Delimiter != ";" && c.Delimiter != "," {
		return fmt.Errorf("unsupported delimiter %q (use \";\" or \",\")", c.Delimiter)
	}
	if money.GetCurrency(c.Currency) == nil {
		c.Currency = "USD"
	}
	return nil
}

// DelimiterRune returns the configured delimiter as the rune the loader and
// exporter expect.
func (c *Config) DelimiterRune() rune {
	return rune(c.Delimiter[0])
}

// Criteria returns the configured screening thresholds.
func (c *Config) Criteria() Criteria {
	return Criteria{
		MinValuationIndex: c.MinValuationIndex,
		MaxRiskScore:      c.MaxRiskScore,
	}
}
