// Package sources defines the common contract of the two activity records
// cragsync reconciles. Each source turns raw file content into a logbook.
package sources

import "github.com/agentstation/cragsync/pkg/logbook"

// ID identifies a source.
type ID string

const (
	// TheCragID is the structured CSV export of theCrag.
	TheCragID ID = "thecrag"
	// JournalID is the manually maintained free-form journal.
	JournalID ID = "journal"
)

// String returns the identifier as a string.
func (id ID) String() string {
	return string(id)
}

// Source converts raw content into a logbook.
type Source interface {
	ID() ID
	Load(data []byte) (*logbook.Logbook, error)
}
