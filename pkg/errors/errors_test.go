package errors_test

import (
	"errors"
	"testing"

	pkgerrors "github.com/agentstation/cragsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestIOError(t *testing.T) {
	t.Run("read error", func(t *testing.T) {
		base := errors.New("no such file or directory")
		err := pkgerrors.NewIOError("read", "/tmp/ticks.csv", base)
		assert.Equal(t, "IO error during read of /tmp/ticks.csv: no such file or directory", err.Error())
		assert.True(t, pkgerrors.IsFileRead(err))
		assert.ErrorIs(t, err, base)
	})

	t.Run("non-read operation", func(t *testing.T) {
		err := pkgerrors.NewIOError("stat", "", errors.New("boom"))
		assert.Equal(t, "IO error during stat: boom", err.Error())
		assert.False(t, pkgerrors.IsFileRead(err))
	})
}

func TestMissingFieldError(t *testing.T) {
	t.Run("with row", func(t *testing.T) {
		err := pkgerrors.NewMissingFieldError("Crag Path", 4)
		assert.Equal(t, `missing required field "Crag Path" at row 4`, err.Error())
		assert.True(t, pkgerrors.IsMissingField(err))
	})

	t.Run("without row", func(t *testing.T) {
		err := pkgerrors.NewMissingFieldError("Ascent Date", 0)
		assert.Equal(t, `missing required field "Ascent Date"`, err.Error())
	})
}

func TestDateParseError(t *testing.T) {
	t.Run("field and row", func(t *testing.T) {
		err := pkgerrors.NewDateParseError("csv", "Ascent Date", "2023-13-01T00:00:00Z", "2006-01-02T15:04:05Z", 3, errors.New("month out of range"))
		assert.Equal(t, `cannot parse date field "Ascent Date" value "2023-13-01T00:00:00Z" at row 3: month out of range`, err.Error())
		assert.True(t, pkgerrors.IsInvalidDate(err))
	})

	t.Run("source only", func(t *testing.T) {
		err := pkgerrors.NewDateParseError("logbook", "", "2023-02-30", "2006-01-02", 0, nil)
		assert.Equal(t, `cannot parse logbook date value "2023-02-30"`, err.Error())
	})
}

func TestMalformedRowError(t *testing.T) {
	inner := pkgerrors.NewMissingFieldError("Ascent Label", 7)
	err := pkgerrors.NewMalformedRowError(7, inner)

	assert.Contains(t, err.Error(), "malformed row 7")
	assert.True(t, pkgerrors.IsMalformedRow(err))
	assert.True(t, pkgerrors.IsMissingField(err))

	var missing *pkgerrors.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "Ascent Label", missing.Field)
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		err      *pkgerrors.ParseError
		expected string
	}{
		{
			name:     "file and line",
			err:      &pkgerrors.ParseError{Format: "csv", File: "ticks.csv", Line: 2, Message: "bare quote"},
			expected: "parse error in csv at ticks.csv:2: bare quote",
		},
		{
			name:     "file only",
			err:      &pkgerrors.ParseError{Format: "yaml", File: ".cragsync.yaml", Message: "bad indent"},
			expected: "parse error in yaml file .cragsync.yaml: bad indent",
		},
		{
			name:     "no file",
			err:      &pkgerrors.ParseError{Format: "logbook", Message: "empty"},
			expected: "logbook parse error: empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestConfigError(t *testing.T) {
	base := errors.New("depth must be positive")
	err := pkgerrors.NewConfigError("overrides", "invalid depth for Geyikbayırı", base)
	assert.Equal(t, "configuration error in overrides: invalid depth for Geyikbayırı", err.Error())
	assert.True(t, pkgerrors.IsConfigError(err))
	assert.ErrorIs(t, err, base)
}
