package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/openmill/camflow/internal/history"
)

func newConvertCmd() *cobra.Command {
	var (
		output  string
		exclude []string
	)
	cmd := &cobra.Command{
		Use:   "convert <project-file>",
		Short: "Re-serialize a project file in normalized form",
		Long: "Parse a project file and write it back out: sections in canonical\n" +
			"order, unrecognized fields dropped, extension data preserved.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], output, exclude)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "sections to leave out of input and output")
	return cmd
}

func runConvert(cmd *cobra.Command, path, output string, exclude []string) error {
	excluded, err := parseSections(exclude)
	if err != nil {
		return err
	}

	f, err := loadProject(path, excluded)
	if err != nil {
		return err
	}
	items := countItems(f.Registry())
	recordHistory(path, history.ActionLoad, items)

	if output == "" {
		return f.DumpTo(cmd.OutOrStdout(), excluded...)
	}

	out, err := os.Create(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := f.DumpTo(out, excluded...); err != nil {
		return err
	}
	recordHistory(output, history.ActionSave, items)
	return nil
}
