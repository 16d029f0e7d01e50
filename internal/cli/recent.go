package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/openmill/camflow/internal/history"
	"github.com/openmill/camflow/internal/paths"
)

func newRecentCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently loaded and saved project files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecent(cmd, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of entries")
	return cmd
}

func runRecent(cmd *cobra.Command, limit int) error {
	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}
	log, err := history.Open(paths.HistoryPath(dataDir))
	if err != nil {
		return err
	}
	defer log.Close()

	entries, err := log.Recent(limit)
	if err != nil {
		return err
	}

	if flags.jsonMode {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-4s  %4d items  %s\n",
			e.RecordedAt.Local().Format(time.DateTime), e.Action, e.Items, e.Path)
	}
	return nil
}
