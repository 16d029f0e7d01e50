package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmill/camflow/internal/paths"
	"github.com/openmill/camflow/pkg/prefs"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and reset user preferences",
	}
	cmd.AddCommand(newPrefsShowCmd())
	cmd.AddCommand(newPrefsResetCmd())
	return cmd
}

func newPrefsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective preference values",
		Long: "Load persisted preferences over the default table and print every\n" +
			"key. Missing or invalid persisted values fall back to defaults.",
		RunE: runPrefsShow,
	}
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	store, err := openPrefs()
	if err != nil {
		return err
	}

	if flags.jsonMode {
		values := make(map[string]any, len(store.Keys()))
		for _, key := range store.Keys() {
			value, _ := store.Get(key)
			values[key] = value
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	}

	for _, key := range store.Keys() {
		value, _ := store.Get(key)
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding preference %s: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, encoded)
	}
	return nil
}

func newPrefsResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the preferences file with defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return err
			}
			store := prefs.New(prefs.Defaults())
			path := paths.PreferencesPath(configDir)
			if err := store.Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preferences reset: %s\n", path)
			return nil
		},
	}
}

// openPrefs builds a store from the default table and loads the
// persisted file over it. A load failure is already logged and leaves
// the store at its defaults, which are still worth showing.
func openPrefs() (*prefs.Store, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return nil, err
	}
	store := prefs.New(prefs.Defaults())
	_ = store.Load(paths.PreferencesPath(configDir))
	return store, nil
}
