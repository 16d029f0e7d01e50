package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openmill/camflow/internal/history"
	"github.com/openmill/camflow/pkg/types"
)

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections <project-file>",
		Short: "Print per-section item counts for a project file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSections,
	}
}

func runSections(cmd *cobra.Command, args []string) error {
	f, err := loadProject(args[0], nil)
	if err != nil {
		return err
	}
	reg := f.Registry()
	recordHistory(args[0], history.ActionLoad, countItems(reg))

	if flags.jsonMode {
		counts := make(map[string]int, len(types.Kinds()))
		for _, kind := range types.Kinds() {
			counts[string(kind.Section)] = reg.Collection(kind.Section).Len()
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	}

	for _, kind := range types.Kinds() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", kind.Section, reg.Collection(kind.Section).Len())
	}
	return nil
}
