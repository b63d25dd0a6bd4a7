package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rustyeddy/swingtrader/backtest"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrUnknownMode is returned for a run mode that has no preset.
var ErrUnknownMode = errors.New("unknown mode")

// Modes maps a run mode to its strategy parameters.
var Modes = map[string]backtest.Config{
	"small": {
		MinIntradayProfit:  decimal.NewFromInt(100),
		MinBalanceFraction: decimal.Zero,
	},
	"large": {
		MinIntradayProfit:  decimal.NewFromInt(1),
		MinBalanceFraction: decimal.RequireFromString("0.1"),
	},
}

// ForMode returns the strategy parameters of the named mode.
func ForMode(name string) (backtest.Config, error) {
	cfg, ok := Modes[strings.ToLower(name)]
	if !ok {
		return backtest.Config{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownMode, name, strings.Join(ModeNames(), ", "))
	}
	return cfg, nil
}

// ModeNames lists the known modes in sorted order.
func ModeNames() []string {
	names := make([]string, 0, len(Modes))
	for n := range Modes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Config holds everything about a run except the strategy parameters,
// which come from the mode.
type Config struct {
	DataDir        string        `json:"data_dir" yaml:"data_dir"`
	OutputDir      string        `json:"output_dir" yaml:"output_dir"`
	InitialBalance float64       `json:"initial_balance" yaml:"initial_balance"`
	MinProfit      float64       `json:"min_profit" yaml:"min_profit"`
	Journal        JournalConfig `json:"journal" yaml:"journal"`
}

// JournalConfig contains journaling parameters
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "text" or "sqlite"
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
	Org    bool   `json:"org" yaml:"org"`
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		DataDir:        "Stocks",
		OutputDir:      ".",
		InitialBalance: 1,
		MinProfit:      1,
		Journal: JournalConfig{
			Type: "text",
			Org:  true,
		},
	}
}

// LoadFromFile loads configuration from a file. Fields missing from the file
// keep their default.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.InitialBalance < 0 {
		return fmt.Errorf("initial_balance must not be negative")
	}
	if c.MinProfit < 0 {
		return fmt.Errorf("min_profit must not be negative")
	}
	switch c.Journal.Type {
	case "text":
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for sqlite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'text' or 'sqlite'")
	}
	return nil
}

// Balance is the starting cash of a run.
func (c *Config) Balance() decimal.Decimal {
	return decimal.NewFromFloat(c.InitialBalance)
}

// Profit is the minimum max-minus-min spread for an instrument to be traded.
func (c *Config) Profit() decimal.Decimal {
	return decimal.NewFromFloat(c.MinProfit)
}
