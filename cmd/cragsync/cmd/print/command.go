// Package print implements the print command, which renders a theCrag export
// in journal format.
package print

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cragsync"
	"github.com/agentstation/cragsync/internal/cmd/output"
	"github.com/agentstation/cragsync/pkg/logging"
)

// AppContext defines the interface that the print command needs from the app.
type AppContext interface {
	Client() (*cragsync.Client, error)
	Inputs() (csvPath, logbookPath string, err error)
	OutputFormat() string
}

// Formats lists the output formats print supports.
var Formats = []output.Format{output.FormatText, output.FormatJSON, output.FormatYAML, output.FormatTable}

// NewCommand creates the print command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the theCrag export as journal lines",
		Long: `Print reads the theCrag export, resolves every ascent to its crag,
normalizes crag names to ASCII and prints one journal line per day in
ascending date order. The text output can be pasted below the sync marker of
the journal.

The journal is required but not read.`,
		Example: `  cragsync print --csv ticks.csv --logbook journal.md
  cragsync print --csv ticks.csv --logbook journal.md -o table`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}
}

func run(cmd *cobra.Command, app AppContext) error {
	format, err := output.ParseFormat(app.OutputFormat(), Formats...)
	if err != nil {
		return err
	}

	csvPath, _, err := app.Inputs()
	if err != nil {
		return err
	}

	client, err := app.Client()
	if err != nil {
		return err
	}

	book, err := client.Export(csvPath)
	if err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Debug().
		Int("days", book.Len()).
		Str("format", string(format)).
		Msg("Printing export")

	var data any = book.Entries()
	if format == output.FormatText {
		data = book.Lines()
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}
