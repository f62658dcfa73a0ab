package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cragsync"
)

// Mock provides a mock implementation of Interface for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ClientFunc func() (*cragsync.Client, error)
	CSVPath    string
	Logbook    string
	Format     string
	Color      bool
	LoggerFunc func() *zerolog.Logger
}

// Client returns a client using the mock function or a default client.
func (m *Mock) Client() (*cragsync.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc()
	}
	return cragsync.New(cragsync.WithLogger(m.Logger()))
}

// Inputs returns the configured paths without validation.
func (m *Mock) Inputs() (string, string, error) {
	return m.CSVPath, m.Logbook, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns Format.
func (m *Mock) OutputFormat() string {
	return m.Format
}

// ColorEnabled returns Color.
func (m *Mock) ColorEnabled() bool {
	return m.Color
}

// Version returns "dev".
func (m *Mock) Version() string {
	return "dev"
}

var _ Interface = (*Mock)(nil)
