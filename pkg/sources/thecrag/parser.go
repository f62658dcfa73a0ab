// Package thecrag parses the CSV ascent export of theCrag.
//
// Only three columns are used: "Ascent Label", "Crag Path" and "Ascent Date".
// The crag name of each ascent is resolved from the hierarchical crag path.
package thecrag

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/agentstation/cragsync/pkg/constants"
	"github.com/agentstation/cragsync/pkg/crags"
	"github.com/agentstation/cragsync/pkg/errors"
	"github.com/agentstation/cragsync/pkg/logbook"
	"github.com/agentstation/cragsync/pkg/logging"
	"github.com/agentstation/cragsync/pkg/sources"
)

// utf8BOM is prepended by some spreadsheet exports.
const utf8BOM = "\ufeff"

var requiredColumns = []string{
	constants.ColumnAscentLabel,
	constants.ColumnCragPath,
	constants.ColumnAscentDate,
}

// Parser converts export rows into ascents.
type Parser struct {
	resolver *crags.Resolver
	logger   *zerolog.Logger
}

var _ sources.Source = (*Parser)(nil)

// Option configures a Parser.
type Option func(*Parser)

// WithResolver sets the crag path resolver.
func WithResolver(r *crags.Resolver) Option {
	return func(p *Parser) {
		if r != nil {
			p.resolver = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewParser creates a Parser using the default resolver unless overridden.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		resolver: crags.DefaultResolver(),
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID returns the source identifier.
func (p *Parser) ID() sources.ID {
	return sources.TheCragID
}

// Load parses data and folds the ascents into a logbook.
func (p *Parser) Load(data []byte) (*logbook.Logbook, error) {
	ascents, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	return logbook.FromAscents(ascents), nil
}

// Parse converts the CSV export into ascents in row order.
func (p *Parser) Parse(data []byte) ([]logbook.Ascent, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.NewMissingFieldError(requiredColumns[0], 1)
	}
	if err != nil {
		return nil, errors.NewMalformedRowError(rowOf(err, 1), csvError(err))
	}
	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var ascents []logbook.Ascent
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewMalformedRowError(rowOf(err, 0), csvError(err))
		}
		row, _ := r.FieldPos(0)

		ascent, err := p.parseRecord(record, columns, row)
		if err != nil {
			return nil, errors.NewMalformedRowError(row, err)
		}
		p.logger.Trace().
			Int("row", row).
			Str("route", ascent.RouteName).
			Str("crag", ascent.CragName).
			Stringer("date", ascent.Date).
			Msg("Parsed ascent")
		ascents = append(ascents, ascent)
	}

	p.logger.Debug().Int("ascents", len(ascents)).Msg("Parsed theCrag export")
	return ascents, nil
}

func (p *Parser) parseRecord(record []string, columns map[string]int, row int) (logbook.Ascent, error) {
	field := func(name string) (string, error) {
		idx := columns[name]
		if idx >= len(record) {
			return "", errors.NewMissingFieldError(name, row)
		}
		return record[idx], nil
	}

	label, err := field(constants.ColumnAscentLabel)
	if err != nil {
		return logbook.Ascent{}, err
	}
	path, err := field(constants.ColumnCragPath)
	if err != nil {
		return logbook.Ascent{}, err
	}
	rawDate, err := field(constants.ColumnAscentDate)
	if err != nil {
		return logbook.Ascent{}, err
	}

	date, err := ParseTimestamp(rawDate)
	if err != nil {
		return logbook.Ascent{}, errors.NewDateParseError("csv", constants.ColumnAscentDate, rawDate,
			constants.AscentTimestampLayout, row, err)
	}

	return logbook.Ascent{
		RouteName: label,
		CragName:  p.resolver.Resolve(path),
		Date:      date,
	}, nil
}

// ParseTimestamp parses an export timestamp and drops the time of day.
// Only the exact layout is accepted; time.Parse alone would also take
// fractional seconds.
func ParseTimestamp(raw string) (civil.Date, error) {
	if len(raw) != len(constants.AscentTimestampLayout) {
		return civil.Date{}, fmt.Errorf("timestamp %q does not match layout %s", raw, constants.AscentTimestampLayout)
	}
	t, err := time.Parse(constants.AscentTimestampLayout, raw)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.DateOf(t), nil
}

// indexColumns maps each required column to its position in the header.
func indexColumns(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}

	columns := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		idx, ok := positions[name]
		if !ok {
			return nil, errors.NewMissingFieldError(name, 1)
		}
		columns[name] = idx
	}
	return columns, nil
}

// csvError wraps a reader failure in a ParseError carrying its line.
func csvError(err error) error {
	perr := errors.NewParseError("csv", "", err)
	perr.Line = rowOf(err, 0)
	return perr
}

// rowOf extracts the line number from a csv reader error.
func rowOf(err error, fallback int) int {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return perr.Line
	}
	return fallback
}
