package differ

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// ChangeType represents the type of discrepancy for one day.
type ChangeType string

const (
	// ChangeTypeDayMissing indicates a day present only in the external logbook.
	ChangeTypeDayMissing ChangeType = "day-missing"
	// ChangeTypeDayExtraneous indicates a day present only in the manual logbook.
	ChangeTypeDayExtraneous ChangeType = "day-extraneous"
	// ChangeTypeCragsDiffer indicates a day present in both with differing crags.
	ChangeTypeCragsDiffer ChangeType = "crags-differ"
)

// DayChange is the discrepancy found for one date. Missing holds crags the
// manual logbook lacks, Extraneous crags only the manual logbook has. Both
// are sorted.
type DayChange struct {
	Date       civil.Date
	Type       ChangeType
	Missing    []string
	Extraneous []string
}

// Entry is the serializable form of a DayChange.
type Entry struct {
	Date       string   `json:"date" yaml:"date"`
	Type       string   `json:"type" yaml:"type"`
	Missing    []string `json:"missing,omitempty" yaml:"missing,omitempty"`
	Extraneous []string `json:"extraneous,omitempty" yaml:"extraneous,omitempty"`
}

// Summary provides summary statistics for a changeset.
type Summary struct {
	DaysMissing     int `json:"days_missing" yaml:"days_missing"`
	DaysExtraneous  int `json:"days_extraneous" yaml:"days_extraneous"`
	DaysDiffering   int `json:"days_differing" yaml:"days_differing"`
	CragsMissing    int `json:"crags_missing" yaml:"crags_missing"`
	CragsExtraneous int `json:"crags_extraneous" yaml:"crags_extraneous"`
	TotalChanges    int `json:"total_changes" yaml:"total_changes"`
}

// Changeset represents all discrepancies between two logbooks, ordered by
// ascending date.
type Changeset struct {
	Changes []DayChange
	Summary Summary
}

// IsEmpty returns true if the changeset contains no changes.
func (c *Changeset) IsEmpty() bool {
	return c.Summary.TotalChanges == 0
}

// HasChanges returns true if the changeset contains any changes.
func (c *Changeset) HasChanges() bool {
	return c.Summary.TotalChanges > 0
}

// Entries returns the changes in serializable form.
func (c *Changeset) Entries() []Entry {
	entries := make([]Entry, 0, len(c.Changes))
	for _, change := range c.Changes {
		entries = append(entries, Entry{
			Date:       change.Date.String(),
			Type:       string(change.Type),
			Missing:    change.Missing,
			Extraneous: change.Extraneous,
		})
	}
	return entries
}

// Describe returns a one-line human-readable summary of the changeset.
func (c *Changeset) Describe() string {
	if c.IsEmpty() {
		return "No discrepancies detected"
	}
	return fmt.Sprintf("%d days missing, %d days extraneous, %d days with differing crags",
		c.Summary.DaysMissing, c.Summary.DaysExtraneous, c.Summary.DaysDiffering)
}

// calculateSummary computes the summary for a list of changes.
func calculateSummary(changes []DayChange) Summary {
	var s Summary
	for _, change := range changes {
		switch change.Type {
		case ChangeTypeDayMissing:
			s.DaysMissing++
		case ChangeTypeDayExtraneous:
			s.DaysExtraneous++
		case ChangeTypeCragsDiffer:
			s.DaysDiffering++
		}
		s.CragsMissing += len(change.Missing)
		s.CragsExtraneous += len(change.Extraneous)
	}
	s.TotalChanges = s.DaysMissing + s.DaysExtraneous + s.DaysDiffering
	return s
}
