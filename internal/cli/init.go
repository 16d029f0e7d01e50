package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/openmill/camflow/internal/history"
	"github.com/openmill/camflow/internal/paths"
	"github.com/openmill/camflow/pkg/flow"
	"github.com/openmill/camflow/pkg/prefs"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the camflow configuration and data directories",
		Long: "Create the configuration directory with default preferences and a\n" +
			"starter project document, and initialize the project history.",
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("resolve config directory: %s", err))
	}
	dataDir, err := resolveDataDir()
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("resolve data directory: %s", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return exitError(exitSysError, fmt.Sprintf("create config directory: %s", err))
	}

	if err := writeFileIfMissing(filepath.Join(configDir, configFileExt), []byte(defaultConfigYAML)); err != nil {
		return exitError(exitSysError, fmt.Sprintf("write config file: %s", err))
	}

	prefsPath := paths.PreferencesPath(configDir)
	if err := writePrefsIfMissing(prefsPath); err != nil {
		return exitError(exitSysError, fmt.Sprintf("write preferences: %s", err))
	}

	projectPath := paths.DefaultProjectPath(configDir)
	if err := writeFileIfMissing(projectPath, []byte(flow.DefaultProject)); err != nil {
		return exitError(exitSysError, fmt.Sprintf("write default project: %s", err))
	}

	log, err := history.Open(paths.HistoryPath(dataDir))
	if err != nil {
		return exitError(exitSysError, fmt.Sprintf("initialize history: %s", err))
	}
	if err := log.Close(); err != nil {
		return exitError(exitSysError, fmt.Sprintf("finalize history: %s", err))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Camflow initialized successfully")
	return nil
}

// writePrefsIfMissing saves the default preference table if no
// preferences file exists yet (idempotent).
func writePrefsIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return prefs.New(prefs.Defaults()).Save(path)
}

// writeFileIfMissing creates a file with the given content if it does
// not exist. If it already exists, the function returns nil (idempotent).
func writeFileIfMissing(path string, content []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
