// Package logbook holds the canonical per-date record of visited crags that
// both the theCrag export and the manual journal are folded into.
package logbook

import (
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/agentstation/cragsync/pkg/constants"
)

// Logbook maps calendar dates to the set of crags visited on that date.
// Dates iterate in ascending order. The zero value is not usable; call New.
type Logbook struct {
	days map[civil.Date]CragSet
}

// Entry is the serializable form of one logbook day.
type Entry struct {
	Date  string   `json:"date" yaml:"date"`
	Crags []string `json:"crags" yaml:"crags"`
}

// New returns an empty logbook.
func New() *Logbook {
	return &Logbook{days: make(map[civil.Date]CragSet)}
}

// FromAscents folds ascents into a logbook, unioning crags per date.
// Ascents without a crag name are skipped.
func FromAscents(ascents []Ascent) *Logbook {
	l := New()
	for _, a := range ascents {
		l.AddCrag(a.Date, a.CragName)
	}
	return l
}

// FromDays folds journal days into a logbook. A day replaces whatever an
// earlier day with the same date recorded.
func FromDays(days []Day) *Logbook {
	l := New()
	for _, d := range days {
		l.SetDay(d.Date, d.Crags)
	}
	return l
}

// AddCrag records a visit to crag on date. Empty names are ignored.
func (l *Logbook) AddCrag(date civil.Date, crag string) {
	if crag == "" {
		return
	}
	set, ok := l.days[date]
	if !ok {
		set = make(CragSet)
		l.days[date] = set
	}
	set.Add(crag)
}

// SetDay replaces the crag set for date.
func (l *Logbook) SetDay(date civil.Date, crags CragSet) {
	l.days[date] = crags.Clone()
}

// Day returns the crag set recorded for date.
func (l *Logbook) Day(date civil.Date) (CragSet, bool) {
	set, ok := l.days[date]
	return set, ok
}

// Crags returns the sorted crag names for date.
func (l *Logbook) Crags(date civil.Date) []string {
	return l.days[date].Sorted()
}

// Len returns the number of dates in the logbook.
func (l *Logbook) Len() int {
	return len(l.days)
}

// Dates returns all dates in ascending order.
func (l *Logbook) Dates() []civil.Date {
	dates := make([]civil.Date, 0, len(l.days))
	for date := range l.days {
		dates = append(dates, date)
	}
	SortDates(dates)
	return dates
}

// Normalize returns a new logbook with every crag name passed through fn.
// Names that normalize to the same value collapse into one.
func (l *Logbook) Normalize(fn func(string) string) *Logbook {
	out := New()
	for date, set := range l.days {
		normalized := make(CragSet, len(set))
		for name := range set {
			normalized.Add(fn(name))
		}
		out.days[date] = normalized
	}
	return out
}

// Equal reports whether both logbooks hold the same dates and crags.
func (l *Logbook) Equal(other *Logbook) bool {
	if l.Len() != other.Len() {
		return false
	}
	for date, set := range l.days {
		otherSet, ok := other.days[date]
		if !ok || !set.Equal(otherSet) {
			return false
		}
	}
	return true
}

// Entries returns the logbook as a date-ordered slice.
func (l *Logbook) Entries() []Entry {
	entries := make([]Entry, 0, l.Len())
	for _, date := range l.Dates() {
		entries = append(entries, Entry{Date: date.String(), Crags: l.Crags(date)})
	}
	return entries
}

// Lines renders one journal line per date, ascending.
func (l *Logbook) Lines() []string {
	lines := make([]string, 0, l.Len())
	for _, date := range l.Dates() {
		lines = append(lines, FormatLine(date, l.Crags(date)))
	}
	return lines
}

// String renders the logbook in journal format, one newline-terminated line
// per date. An empty logbook renders as "".
func (l *Logbook) String() string {
	var b strings.Builder
	for _, line := range l.Lines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatLine renders a journal line such as
// "2023-05-01: Felsklettern (Sektor A, Weissenstein)".
func FormatLine(date civil.Date, crags []string) string {
	return fmt.Sprintf("%s: %s (%s)", date, constants.ActivityLabel, strings.Join(crags, constants.CragSeparator))
}

// SortDates sorts dates in ascending order.
func SortDates(dates []civil.Date) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
}
