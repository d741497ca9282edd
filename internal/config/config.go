package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/tickmark-dev/tickmark/internal/amount"
)

// Config represents the top-level tickmark.yaml configuration.
type Config struct {
	Currency   CurrencyConfig   `yaml:"currency"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Extraction ExtractionConfig `yaml:"extraction"`
	RunLog     RunLogConfig     `yaml:"run_log"`
	Server     ServerConfig     `yaml:"server"`
}

// CurrencyConfig sets the symbol used when a document does not state one.
type CurrencyConfig struct {
	DefaultSymbol string `yaml:"default_symbol"`
}

// ThresholdsConfig holds the severity cutoffs in base currency units.
type ThresholdsConfig struct {
	High   float64 `yaml:"high"`
	Medium float64 `yaml:"medium"`
}

// ExtractionConfig selects the extraction producer.
type ExtractionConfig struct {
	Producer string `yaml:"producer"`
}

// RunLogConfig controls the usage run log.
type RunLogConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// ServerConfig controls the HTTP surface.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// SeverityThresholds converts the configured cutoffs for the engine.
func (c *Config) SeverityThresholds() amount.Thresholds {
	return amount.Thresholds{
		High:   decimal.NewFromFloat(c.Thresholds.High),
		Medium: decimal.NewFromFloat(c.Thresholds.Medium),
	}
}

// Load reads a tickmark.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Currency: CurrencyConfig{
			DefaultSymbol: "RM",
		},
		Thresholds: ThresholdsConfig{
			High:   10_000,
			Medium: 1_000,
		},
		Extraction: ExtractionConfig{
			Producer: "jsonfile",
		},
		RunLog: RunLogConfig{
			Enabled: true,
			Path:    "logs/runs.csv",
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
	}
}
