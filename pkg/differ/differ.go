// Package differ compares the logbook derived from the theCrag export with the
// logbook of the manual journal and reports, per day, which crags are missing
// from the journal and which are extraneous in it.
package differ

import (
	"cloud.google.com/go/civil"
	"github.com/rs/zerolog"

	"github.com/agentstation/cragsync/pkg/crags"
	"github.com/agentstation/cragsync/pkg/logbook"
	"github.com/agentstation/cragsync/pkg/logging"
)

// Differ handles change detection between logbooks.
type Differ interface {
	// Logbooks compares the external (theCrag) logbook with the manual one.
	Logbooks(external, manual *logbook.Logbook) *Changeset
}

// differ is the default implementation of Differ.
type differ struct {
	normalize func(string) string
	logger    *zerolog.Logger
}

// New creates a Differ with default settings.
func New(opts ...Option) Differ {
	d := &differ{
		normalize: crags.Normalize,
		logger:    logging.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diff compares two logbooks with the default settings.
func Diff(external, manual *logbook.Logbook) *Changeset {
	return New().Logbooks(external, manual)
}

// Logbooks normalizes both sides and walks the union of their dates in
// ascending order.
func (d *differ) Logbooks(external, manual *logbook.Logbook) *Changeset {
	external = external.Normalize(d.normalize)
	manual = manual.Normalize(d.normalize)

	changeset := &Changeset{Changes: []DayChange{}}
	for _, date := range unionDates(external, manual) {
		ext, inExternal := external.Day(date)
		man, inManual := manual.Day(date)

		var change DayChange
		switch {
		case inExternal && !inManual:
			change = DayChange{Date: date, Type: ChangeTypeDayMissing, Missing: ext.Sorted()}
		case !inExternal && inManual:
			change = DayChange{Date: date, Type: ChangeTypeDayExtraneous, Extraneous: man.Sorted()}
		default:
			missing := ext.Difference(man)
			extraneous := man.Difference(ext)
			if len(missing) == 0 && len(extraneous) == 0 {
				continue
			}
			change = DayChange{
				Date:       date,
				Type:       ChangeTypeCragsDiffer,
				Missing:    missing.Sorted(),
				Extraneous: extraneous.Sorted(),
			}
		}

		d.logger.Debug().
			Stringer("date", date).
			Str("type", string(change.Type)).
			Strs("missing", change.Missing).
			Strs("extraneous", change.Extraneous).
			Msg("Found discrepancy")
		changeset.Changes = append(changeset.Changes, change)
	}

	changeset.Summary = calculateSummary(changeset.Changes)
	d.logger.Debug().Int("total", changeset.Summary.TotalChanges).Msg("Compared logbooks")
	return changeset
}

// unionDates returns every date present in either logbook, ascending.
func unionDates(a, b *logbook.Logbook) []civil.Date {
	seen := make(map[civil.Date]struct{}, a.Len()+b.Len())
	for _, date := range a.Dates() {
		seen[date] = struct{}{}
	}
	for _, date := range b.Dates() {
		seen[date] = struct{}{}
	}
	dates := make([]civil.Date, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	logbook.SortDates(dates)
	return dates
}
