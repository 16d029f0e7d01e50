package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the camflow release version.
const Version = "0.1.0"

const modulePath = "github.com/openmill/camflow"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the camflow version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "camflow v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
