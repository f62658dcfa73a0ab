// Package constants provides shared constants used throughout the cragsync codebase.
package constants

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Journal format constants. The print output of cragsync must match the
// journal line pattern exactly so that it can be pasted back into the journal.
const (
	// SyncSentinel marks the start of the machine-parsed journal section.
	SyncSentinel = "### BEGIN theCrag sync"

	// ActivityLabel is the fixed activity word used on every journal line.
	ActivityLabel = "Felsklettern"

	// CragSeparator separates crag names inside a journal line.
	CragSeparator = ", "

	// PathDelimiter separates nested area names in a theCrag crag path.
	PathDelimiter = " - "
)

// Date layouts in Go reference-time notation.
const (
	// DateLayout is the calendar date layout used by the journal.
	DateLayout = "2006-01-02"

	// AscentTimestampLayout is the theCrag export timestamp layout.
	AscentTimestampLayout = "2006-01-02T15:04:05Z"
)

// theCrag CSV export column names.
const (
	ColumnAscentLabel = "Ascent Label"
	ColumnCragPath    = "Crag Path"
	ColumnAscentDate  = "Ascent Date"
)

// Config file and environment naming.
const (
	// ConfigFileName is the config file base name searched in $HOME and ".".
	ConfigFileName = ".cragsync"

	// EnvPrefix prefixes all environment variables read by viper.
	EnvPrefix = "CRAGSYNC"
)
