package types

import "fmt"

// Section identifies one top-level collection in a project document.
type Section string

// The closed set of document sections. Their declaration order here is not
// significant; registry order is fixed by Kinds.
const (
	SectionTools          Section = "tools"
	SectionProcesses      Section = "processes"
	SectionBounds         Section = "bounds"
	SectionTasks          Section = "tasks"
	SectionModels         Section = "models"
	SectionToolpaths      Section = "toolpaths"
	SectionExportSettings Section = "export_settings"
	SectionExports        Section = "exports"
)

// validSections is the set of recognized section identifiers.
var validSections = map[Section]bool{
	SectionTools:          true,
	SectionProcesses:      true,
	SectionBounds:         true,
	SectionTasks:          true,
	SectionModels:         true,
	SectionToolpaths:      true,
	SectionExportSettings: true,
	SectionExports:        true,
}

// IsValid reports whether s is one of the recognized section identifiers.
func (s Section) IsValid() bool {
	return validSections[s]
}

// ParseSection converts a raw string into a Section.
// Returns ErrUnknownSection if the string is not a recognized identifier.
func ParseSection(raw string) (Section, error) {
	s := Section(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, raw)
	}
	return s, nil
}
