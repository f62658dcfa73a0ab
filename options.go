package cragsync

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/cragsync/pkg/crags"
	"github.com/agentstation/cragsync/pkg/errors"
	"github.com/agentstation/cragsync/pkg/logging"
)

// Option is a function that configures a Client
type Option func(*config) error

// config holds the Client configuration
type config struct {
	fs        afero.Fs
	logger    *zerolog.Logger
	resolver  *crags.Resolver
	normalize func(string) string
}

func defaultConfig() *config {
	return &config{
		fs:        afero.NewOsFs(),
		logger:    logging.Default(),
		resolver:  crags.DefaultResolver(),
		normalize: crags.Normalize,
	}
}

// WithFs sets the filesystem input files are read from
func WithFs(fs afero.Fs) Option {
	return func(c *config) error {
		if fs == nil {
			return errors.NewConfigError("fs", "filesystem must not be nil", errors.ErrInvalidInput)
		}
		c.fs = fs
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		if logger != nil {
			c.logger = logger
		}
		return nil
	}
}

// WithResolver sets the crag path resolver used for the theCrag export
func WithResolver(r *crags.Resolver) Option {
	return func(c *config) error {
		if r == nil {
			return errors.NewConfigError("resolver", "resolver must not be nil", errors.ErrInvalidInput)
		}
		c.resolver = r
		return nil
	}
}

// WithResolverTables builds a resolver from the default tables extended with
// extra stoplist labels and overrides. Extra overrides replace defaults with
// the same name.
func WithResolverTables(stoplist []string, overrides crags.Overrides) Option {
	return func(c *config) error {
		merged := crags.DefaultOverrides()
		for name, depth := range overrides {
			merged[name] = depth
		}
		r, err := crags.NewResolver(append(crags.DefaultStoplist(), stoplist...), merged)
		if err != nil {
			return err
		}
		c.resolver = r
		return nil
	}
}

// WithNormalizer sets the crag name normalizer
func WithNormalizer(fn func(string) string) Option {
	return func(c *config) error {
		if fn == nil {
			return errors.NewConfigError("normalizer", "normalizer must not be nil", errors.ErrInvalidInput)
		}
		c.normalize = fn
		return nil
	}
}
