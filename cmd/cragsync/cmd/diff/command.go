// Package diff implements the diff command, which reports where the journal
// disagrees with the theCrag export.
package diff

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/cragsync"
	"github.com/agentstation/cragsync/internal/cmd/output"
	"github.com/agentstation/cragsync/pkg/logging"
	"github.com/agentstation/cragsync/pkg/differ"
)

// AppContext defines the interface that the diff command needs from the app.
type AppContext interface {
	Client() (*cragsync.Client, error)
	Inputs() (csvPath, logbookPath string, err error)
	OutputFormat() string
	ColorEnabled() bool
}

// Formats lists the output formats diff supports.
var Formats = []output.Format{output.FormatText, output.FormatJSON, output.FormatYAML}

// NewCommand creates the diff command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "diff",
		Short: "Report days and crags where the journal differs from the export",
		Long: `Diff compares the theCrag export with the synced part of the journal.

Each reported date is one line:
  -DATE: Felsklettern (A, B)   day is in the export but not in the journal
  +DATE: Felsklettern (C)      day is in the journal but not in the export
  DATE: -A, +C                 both have the day with different crags

Nothing is printed when the records agree.`,
		Example: `  cragsync diff --csv ticks.csv --logbook journal.md
  cragsync diff --csv ticks.csv --logbook journal.md -o json`,
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

	csvPath, logbookPath, err := app.Inputs()
	if err != nil {
		return err
	}

	client, err := app.Client()
	if err != nil {
		return err
	}

	changes, err := client.Diff(csvPath, logbookPath)
	if err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Debug().
		Int("changes", changes.Summary.TotalChanges).
		Msg(changes.Describe())

	if format == output.FormatText {
		return changes.Render(cmd.OutOrStdout(), differ.RenderOptions{Color: app.ColorEnabled()})
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), changes.Entries())
}
