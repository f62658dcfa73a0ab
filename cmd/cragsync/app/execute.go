package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/cragsync/pkg/logging"
)

// Execute runs the cragsync CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cragsync",
		Short:   "Reconcile a theCrag ascent export with a climbing journal",
		Version: a.version,
		Long: `cragsync reads an ascent export downloaded from theCrag and a manually
kept journal, and either prints the export in journal format or reports the
days and crags on which the two records disagree.

Journal lines are only read after the line "### BEGIN theCrag sync".`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Values are read back through the flag set in setupCommand so that only
	// flags given on the command line override config and environment.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $HOME/.cragsync.yaml)")
	flags.String("csv", "", "theCrag ascent export (CSV)")
	flags.String("logbook", "", "manually maintained journal")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.StringP("format", "o", "", "output format: text, json, yaml, table")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("cragsync {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if f := cmd.Flags().Lookup("config"); f != nil && f.Changed {
		config, err := LoadConfig(f.Value.String())
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(cmd.Flags())

	if !a.customLogger {
		logger := NewLogger(a.config)
		a.logger = &logger
	}

	ctx := logging.WithCommand(logging.WithLogger(cmd.Context(), a.logger), cmd.Name())
	cmd.SetContext(ctx)

	logging.FromContext(ctx).Debug().
		Str("config", a.config.ConfigFile).
		Msg("Configuration loaded")

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.CreatePrintCommand())
	rootCmd.AddCommand(a.CreateDiffCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
}

// ExitOnError prints an error to standard output and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stdout.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
