package shared

import (
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// SetupLogger configures zerolog for the given level, with pretty console
// output or structured JSON
func SetupLogger(level string, json bool) (zerolog.Logger, error) {
	return setupLogger(os.Stderr, level, json)
}

func setupLogger(w io.Writer, level string, json bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}

	if json {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	} else {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger(), nil
}

// LibraryLogger returns a charmbracelet logger at the same level as the
// process logger, for packages that take a *log.Logger
func LibraryLogger(level string, json bool) (*charmlog.Logger, error) {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := charmlog.Options{Level: lvl, ReportTimestamp: true}
	if json {
		opts.Formatter = charmlog.JSONFormatter
	}
	return charmlog.NewWithOptions(os.Stderr, opts), nil
}
