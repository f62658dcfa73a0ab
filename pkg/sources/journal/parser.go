// Package journal parses the manually maintained climbing journal.
//
// Only the section after the "### BEGIN theCrag sync" line is read. Inside
// it, lines of the form
//
//	2023-05-01: Felsklettern (Krottenseer Turm, Weissenstein)
//
// become days; every other line is prose and skipped silently.
package journal

import (
	"regexp"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/agentstation/cragsync/pkg/constants"
	"github.com/agentstation/cragsync/pkg/errors"
	"github.com/agentstation/cragsync/pkg/logbook"
	"github.com/agentstation/cragsync/pkg/logging"
	"github.com/agentstation/cragsync/pkg/sources"
)

// linePattern is a prefix match; trailing text after the closing paren is allowed.
var linePattern = regexp.MustCompile(`^([0-9-]+): ` + regexp.QuoteMeta(constants.ActivityLabel) + ` \(([^()]+)\)`)

// Parser extracts days from journal text.
type Parser struct {
	logger *zerolog.Logger
}

var _ sources.Source = (*Parser)(nil)

// NewParser creates a Parser. A nil logger uses the default logger.
func NewParser(logger *zerolog.Logger) *Parser {
	if logger == nil {
		logger = logging.Default()
	}
	return &Parser{logger: logger}
}

// ID returns the source identifier.
func (p *Parser) ID() sources.ID {
	return sources.JournalID
}

// Load parses data and folds the days into a logbook.
func (p *Parser) Load(data []byte) (*logbook.Logbook, error) {
	days, err := p.Parse(data)
	if err != nil {
		return nil, err
	}
	return logbook.FromDays(days), nil
}

// Parse returns one Day per matching line after the sentinel, in input
// order. A journal without the sentinel yields no days.
func (p *Parser) Parse(data []byte) ([]logbook.Day, error) {
	var (
		days    []logbook.Day
		synced  bool
		skipped int
	)

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if !synced {
			synced = line == constants.SyncSentinel
			continue
		}

		day, ok, err := ParseLine(line)
		if err != nil {
			var dateErr *errors.DateParseError
			if errors.As(err, &dateErr) {
				dateErr.Row = i + 1
			}
			return nil, err
		}
		if !ok {
			skipped++
			p.logger.Trace().Int("line", i+1).Str("text", line).Msg("Skipped journal line")
			continue
		}
		days = append(days, day)
	}

	if !synced {
		p.logger.Debug().Str("sentinel", constants.SyncSentinel).Msg("Journal has no sync section")
	}
	p.logger.Debug().Int("days", len(days)).Int("skipped", skipped).Msg("Parsed journal")
	return days, nil
}

// ParseLine parses a single journal line. It reports ok=false for lines that
// do not have the day shape and returns an error only when the shape matches
// but the date is not a valid calendar date.
func ParseLine(line string) (logbook.Day, bool, error) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return logbook.Day{}, false, nil
	}

	date, err := civil.ParseDate(m[1])
	if err != nil {
		return logbook.Day{}, false, errors.NewDateParseError("logbook", "", m[1], constants.DateLayout, 0, err)
	}

	return logbook.Day{
		Date:  date,
		Crags: logbook.NewCragSet(strings.Split(m[2], constants.CragSeparator)...),
	}, true, nil
}
