// Package appcontext provides the shared application context interface
// used by all commands.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cragsync"
)

// Interface defines what commands need from the application.
// The App struct from cmd/cragsync/app implements it; tests use Mock.
type Interface interface {
	// Client returns the cragsync client, creating it lazily if needed.
	Client() (*cragsync.Client, error)

	// Inputs returns the export and journal paths resolved from flags,
	// environment and config file. Both are required.
	Inputs() (csvPath, logbookPath string, err error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (text, json, yaml, table).
	OutputFormat() string

	// ColorEnabled reports whether results may be colored.
	ColorEnabled() bool

	// Version returns the application version string.
	Version() string
}
