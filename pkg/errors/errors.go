// Package errors provides custom error types for cragsync.
// These errors enable programmatic error checking with errors.Is / errors.As
// while still rendering a single descriptive message at the top level.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As re-export the standard library helpers so callers need a single import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors for cragsync
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingField indicates that a required column or field is absent
	ErrMissingField = errors.New("missing field")

	// ErrInvalidDate indicates that a date or timestamp could not be parsed
	ErrInvalidDate = errors.New("invalid date")

	// ErrMalformedRow indicates a structural failure in a tabular row
	ErrMalformedRow = errors.New("malformed row")

	// ErrFileRead indicates that an input file could not be read
	ErrFileRead = errors.New("file read failed")
)

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "open", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *IOError) Is(target error) bool {
	return target == ErrFileRead && e.Operation == "read"
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// MissingFieldError is returned when a required column is absent from the
// header or from a single row.
type MissingFieldError struct {
	Field string
	Row   int
}

// Error implements the error interface
func (e *MissingFieldError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("missing required field %q at row %d", e.Field, e.Row)
	}
	return fmt.Sprintf("missing required field %q", e.Field)
}

// Is implements errors.Is support
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(field string, row int) *MissingFieldError {
	return &MissingFieldError{Field: field, Row: row}
}

// DateParseError reports a malformed date in either source. Row is the
// 1-based line number in the source text.
type DateParseError struct {
	Source string // "csv", "logbook"
	Field  string
	Value  string
	Layout string
	Row    int
	Err    error
}

// Error implements the error interface
func (e *DateParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %s date", e.Source)
	if e.Field != "" {
		msg = fmt.Sprintf("cannot parse date field %q", e.Field)
	}
	msg += fmt.Sprintf(" value %q", e.Value)
	if e.Row > 0 {
		msg += fmt.Sprintf(" at row %d", e.Row)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap implements errors.Unwrap
func (e *DateParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DateParseError) Is(target error) bool {
	return target == ErrInvalidDate
}

// NewDateParseError creates a new DateParseError
func NewDateParseError(source, field, value, layout string, row int, err error) *DateParseError {
	return &DateParseError{
		Source: source,
		Field:  field,
		Value:  value,
		Layout: layout,
		Row:    row,
		Err:    err,
	}
}

// MalformedRowError wraps any row-level failure of the tabular source.
type MalformedRowError struct {
	Row int
	Err error
}

// Error implements the error interface
func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed row %d: %v", e.Row, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

// NewMalformedRowError creates a new MalformedRowError
func NewMalformedRowError(row int, err error) *MalformedRowError {
	return &MalformedRowError{Row: row, Err: err}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "csv", "logbook", "yaml"
	File    string
	Line    int
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("parse error in %s at %s:%d: %s", e.Format, e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError. The message is taken from err.
func NewParseError(format, file string, err error) *ParseError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsMissingField checks if an error is a missing field error
func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsInvalidDate checks if an error is a date parse error
func IsInvalidDate(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}

// IsMalformedRow checks if an error is a malformed row error
func IsMalformedRow(err error) bool {
	return errors.Is(err, ErrMalformedRow)
}

// IsFileRead checks if an error is a file read error
func IsFileRead(err error) bool {
	return errors.Is(err, ErrFileRead)
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
