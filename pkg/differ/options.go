package differ

import "github.com/rs/zerolog"

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithNormalizer sets the crag name normalizer applied to both logbooks
// before comparison. A nil function disables normalization.
func WithNormalizer(fn func(string) string) Option {
	return func(d *differ) {
		if fn == nil {
			fn = func(s string) string { return s }
		}
		d.normalize = fn
	}
}

// WithLogger sets the logger used for discrepancy tracing.
func WithLogger(logger *zerolog.Logger) Option {
	return func(d *differ) {
		if logger != nil {
			d.logger = logger
		}
	}
}
