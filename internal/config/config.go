// Package config loads settings for the arandu command from an HCL file and
// the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/arandu/internal/statistics"
)

// Config represents the complete configuration
type Config struct {
	Seed  *uint64        `hcl:"seed,optional"`
	Check *CheckSettings `hcl:"check,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// CheckSettings configures the quality battery
type CheckSettings struct {
	Workers int      `hcl:"workers,optional"` // 0 picks one per CPU
	Draws   int      `hcl:"draws,optional"`
	Buckets []uint64 `hcl:"buckets,optional"`
	Alpha   float64  `hcl:"alpha,optional"`
}

// LogSettings configures process logging
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// envOverrides are read from the environment after the file. A zero value
// means the variable is unset, so ARANDU_SEED cannot force an auto-seed over
// a seed from the file.
type envOverrides struct {
	Seed     uint64 `env:"ARANDU_SEED"`
	Workers  int    `env:"ARANDU_WORKERS"`
	Draws    int    `env:"ARANDU_DRAWS"`
	LogLevel string `env:"ARANDU_LOG_LEVEL"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Check: &CheckSettings{
			Workers: 0,
			Draws:   100_000,
			Buckets: []uint64{2, 3, 7, 1000},
			Alpha:   0.001,
		},
		Log: &LogSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from an HCL file, filling anything the file
// leaves out with defaults. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Check == nil {
		c.Check = defaults.Check
	}
	if c.Check.Draws == 0 {
		c.Check.Draws = defaults.Check.Draws
	}
	if len(c.Check.Buckets) == 0 {
		c.Check.Buckets = defaults.Check.Buckets
	}
	if c.Check.Alpha == 0 {
		c.Check.Alpha = defaults.Check.Alpha
	}

	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
}

// ApplyEnv overrides settings from ARANDU_* environment variables
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Seed != 0 {
		seed := o.Seed
		c.Seed = &seed
	}
	if o.Workers != 0 {
		c.Check.Workers = o.Workers
	}
	if o.Draws != 0 {
		c.Check.Draws = o.Draws
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	return nil
}

// SeedValue returns the configured seed, or 0 (auto-seed) when unset
func (c *Config) SeedValue() uint64 {
	if c.Seed == nil {
		return 0
	}
	return *c.Seed
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Check.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}
	if c.Check.Draws <= 0 {
		return fmt.Errorf("draws must be positive")
	}
	for _, n := range c.Check.Buckets {
		if n < 2 {
			return fmt.Errorf("bucket size must be at least 2, got %d", n)
		}
	}
	if _, err := statistics.ChiSquareCritical(1, c.Check.Alpha); err != nil {
		return fmt.Errorf("invalid alpha: %w", err)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}
