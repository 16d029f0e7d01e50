package cli

import (
	"fmt"
	"os"

	"github.com/openmill/camflow/pkg/flow"
	"github.com/openmill/camflow/pkg/types"
)

// loadProject parses one project file into a fresh registry with full
// replacement semantics.
func loadProject(path string, excluded []types.Section) (*flow.Flow, error) {
	f := flow.New(types.NewRegistry())
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening project file: %w", err)
	}
	defer in.Close()

	if err := f.Parse(in, flow.ParseOptions{Excluded: excluded, Reset: true}); err != nil {
		return nil, err
	}
	return f, nil
}

// countItems returns the total number of entities across all collections.
func countItems(reg *types.Registry) int {
	total := 0
	for _, kind := range types.Kinds() {
		total += reg.Collection(kind.Section).Len()
	}
	return total
}

// parseSections converts raw section names from a flag into Sections,
// returning a user error for unknown names.
func parseSections(raw []string) ([]types.Section, error) {
	sections := make([]types.Section, 0, len(raw))
	for _, name := range raw {
		s, err := types.ParseSection(name)
		if err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, nil
}
