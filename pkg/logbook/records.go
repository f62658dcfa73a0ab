package logbook

import (
	"sort"

	"cloud.google.com/go/civil"
)

// Ascent is a single recorded climb from the theCrag export.
type Ascent struct {
	RouteName string
	CragName  string
	Date      civil.Date
}

// Day is one journal entry: the complete set of crags visited on a date.
type Day struct {
	Date  civil.Date
	Crags CragSet
}

// CragSet is a set of crag names.
type CragSet map[string]struct{}

// NewCragSet returns a set holding names.
func NewCragSet(names ...string) CragSet {
	s := make(CragSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Add inserts name into the set.
func (s CragSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s CragSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Difference returns the names in s that are not in other.
func (s CragSet) Difference(other CragSet) CragSet {
	out := make(CragSet)
	for name := range s {
		if !other.Has(name) {
			out[name] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold the same names.
func (s CragSet) Equal(other CragSet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if !other.Has(name) {
			return false
		}
	}
	return true
}

// Clone returns a copy of the set.
func (s CragSet) Clone() CragSet {
	out := make(CragSet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}

// Sorted returns the names in ascending order.
func (s CragSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
