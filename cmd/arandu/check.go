package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/coder/quartz"

	"github.com/lox/arandu/cmd/arandu/shared"
	"github.com/lox/arandu/internal/config"
	"github.com/lox/arandu/internal/fileutil"
	"github.com/lox/arandu/internal/simulator"
)

// CheckCmd runs the quality battery. Flags override the config file, which
// overrides the defaults.
type CheckCmd struct {
	Seed    *uint64 `help:"Deterministic seed (omit to auto-seed)"`
	Workers int     `short:"w" help:"Parallel streams (default: config, else one per CPU up to 8)"`
	Draws   int     `short:"d" help:"Draws per stream for every check"`
	Report  string  `type:"path" help:"Write the JSON report to this file"`
	JSON    bool    `help:"Print the JSON report instead of the table"`
}

func (c *CheckCmd) Run(globals *Globals) error {
	cfg, err := c.loadConfig(globals)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if globals.Debug {
		level = "debug"
	}
	jsonLogs := globals.LogJSON || cfg.Log.Format == "json"

	logger, err := shared.SetupLogger(level, jsonLogs)
	if err != nil {
		return err
	}
	libLogger, err := shared.LibraryLogger(level, jsonLogs)
	if err != nil {
		return err
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	sim := simulator.New(simulator.Config{
		Seed:    cfg.SeedValue(),
		Workers: cfg.Check.Workers,
		Draws:   cfg.Check.Draws,
		Buckets: cfg.Check.Buckets,
		Alpha:   cfg.Check.Alpha,
		Logger:  libLogger,
		Clock:   quartz.NewReal(),
	})

	report, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("quality run: %w", err)
	}

	logger.Info().
		Uint64("seed", report.Seed).
		Int("workers", report.Workers).
		Int("draws", report.Draws).
		Dur("duration", report.Duration).
		Bool("passed", report.Passed).
		Msg("Quality run finished")

	if c.Report != "" {
		if err := fileutil.WriteAtomic(c.Report, 0644, func(w io.Writer) error {
			return writeReportJSON(w, report)
		}); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logger.Info().Str("path", c.Report).Msg("Report written")
	}

	if c.JSON {
		if err := writeReportJSON(os.Stdout, report); err != nil {
			return err
		}
	} else {
		renderReport(os.Stdout, report)
	}

	return report.Err()
}

func (c *CheckCmd) loadConfig(globals *Globals) (*config.Config, error) {
	cfg, err := config.Load(globals.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if c.Seed != nil {
		seed := *c.Seed
		cfg.Seed = &seed
	}
	if c.Workers != 0 {
		cfg.Check.Workers = c.Workers
	}
	if c.Draws != 0 {
		cfg.Check.Draws = c.Draws
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func writeReportJSON(w io.Writer, report *simulator.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
