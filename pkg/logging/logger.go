// Package logging provides structured logging for cragsync using zerolog.
// Logs always go to stderr by default so that stdout carries only command
// results (logbook lines or the diff report).
//
// Commands receive their logger through the context:
//
//	ctx = logging.WithCommand(logging.WithLogger(ctx, logger), "diff")
//	logging.FromContext(ctx).Debug().Int("changes", n).Msg("Compared logbooks")
//
// Library code takes a *zerolog.Logger option and falls back to Default.
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is used when no logger was configured.
var defaultLogger = NewLoggerFromConfig(envConfig())

// envConfig derives the default configuration from LOG_LEVEL, LOG_FORMAT and
// NO_COLOR. DEBUG=1 is a shortcut for LOG_LEVEL=debug.
func envConfig() *Config {
	cfg := DefaultConfig()
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	} else if os.Getenv("DEBUG") != "" {
		cfg.Level = "debug"
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	return cfg
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default logger, including zerolog's global log.Logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
