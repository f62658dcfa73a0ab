// Package app provides the application context and dependency management
// for the cragsync CLI.
package app

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/cragsync"
	"github.com/agentstation/cragsync/internal/appcontext"
	"github.com/agentstation/cragsync/pkg/errors"
)

// App represents the cragsync application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	fs     afero.Fs
	out    io.Writer

	// customLogger keeps setupCommand from replacing a logger set via WithLogger
	customLogger bool

	// Client instance (lazy-initialized, singleton)
	mu     sync.Mutex
	client *cragsync.Client
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// ColorEnabled reports whether diff output may be colored: --no-color and
// NO_COLOR both disable it, and stdout must be a terminal.
func (a *App) ColorEnabled() bool {
	if a.config.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Inputs returns the export and journal paths. Both must be set through
// --csv/--logbook, CRAGSYNC_CSV/CRAGSYNC_LOGBOOK or the config file.
func (a *App) Inputs() (string, string, error) {
	if a.config.CSVPath == "" {
		return "", "", errors.NewConfigError("inputs", "required flag \"csv\" not set", errors.ErrInvalidInput)
	}
	if a.config.LogbookPath == "" {
		return "", "", errors.NewConfigError("inputs", "required flag \"logbook\" not set", errors.ErrInvalidInput)
	}
	return a.config.CSVPath, a.config.LogbookPath, nil
}

// Client returns the cragsync client, creating it lazily if needed.
func (a *App) Client() (*cragsync.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client != nil {
		return a.client, nil
	}

	client, err := cragsync.New(a.buildClientOptions()...)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions() []cragsync.Option {
	opts := []cragsync.Option{
		cragsync.WithFs(a.fs),
		cragsync.WithLogger(a.logger),
	}
	if len(a.config.Stoplist) > 0 || len(a.config.Overrides) > 0 {
		opts = append(opts, cragsync.WithResolverTables(a.config.Stoplist, a.config.Overrides))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.customLogger = true
		return nil
	}
}

// WithFs sets the filesystem input files are read from (useful for testing).
func WithFs(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// WithOutput redirects command output away from stdout (useful for testing).
func WithOutput(w io.Writer) Option {
	return func(a *App) error {
		a.out = w
		return nil
	}
}
