// Package cli implements the camflow command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/openmill/camflow/internal/history"
	"github.com/openmill/camflow/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "camflow" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "camflow",
		Short: "Persist, validate, and convert CAM project files",
		Long: "Camflow manages CAM project documents (tools, processes, bounds,\n" +
			"tasks, models, toolpaths, and exports) and user preferences.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(flags.verbose)
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log import diagnostics")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newSectionsCmd())
	root.AddCommand(newPrefsCmd())
	root.AddCommand(newRecentCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// configureLogging routes diagnostics to stderr. Import counts and
// per-item failures are logged at info and error level; without
// --verbose only warnings and errors are shown.
func configureLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// recordHistory appends an entry to the project history database. The
// history is advisory; failures are logged and never fail the command.
func recordHistory(path, action string, items int) {
	dataDir, err := resolveDataDir()
	if err != nil {
		slog.Warn("skipping history entry", "error", err)
		return
	}
	log, err := history.Open(paths.HistoryPath(dataDir))
	if err != nil {
		slog.Warn("skipping history entry", "error", err)
		return
	}
	defer log.Close()
	if err := log.Record(path, action, items); err != nil {
		slog.Warn("failed to record history entry", "error", err)
	}
}

// exitError prints the error to stderr and exits with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
