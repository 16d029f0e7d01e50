package types

// Kind describes one entity kind: the document section it owns and the
// construction function that turns raw section data into an entity.
type Kind struct {
	Section Section

	// New constructs an entity from its name and raw document data.
	// Returns an error when the data is invalid for this kind; the
	// parser reports and skips such items.
	New func(name string, data map[string]any) (Entity, error)
}

// kinds is the fixed registry order. Sections are imported and dumped in
// this order, so it is part of the format contract and must not change
// between releases. Name references between kinds are resolved after all
// sections have loaded, so a task may name a model that loads later.
var kinds = []Kind{
	{SectionTools, NewTool},
	{SectionProcesses, NewProcess},
	{SectionBounds, NewBoundary},
	{SectionTasks, NewTask},
	{SectionModels, NewModel},
	{SectionToolpaths, NewToolpath},
	{SectionExportSettings, NewExportSettings},
	{SectionExports, NewExport},
}

// Kinds returns the entity kinds in registry order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Registry owns one collection per entity kind, created lazily on first
// access. It is an explicit object passed to parser, serializer, and
// validator calls; the "one collection per kind, shared across calls"
// contract holds for a given Registry instance.
type Registry struct {
	collections map[Section]*Collection
}

// NewRegistry returns a registry with all collections empty.
func NewRegistry() *Registry {
	return &Registry{collections: make(map[Section]*Collection, len(kinds))}
}

// Collection returns the collection for the given section, creating it on
// first access.
func (r *Registry) Collection(s Section) *Collection {
	c, ok := r.collections[s]
	if !ok {
		c = NewCollection()
		r.collections[s] = c
	}
	return c
}

// Has reports whether a named entity exists in the given section's
// collection. Implements Resolver for cross-collection validation.
func (r *Registry) Has(s Section, name string) bool {
	return r.Collection(s).Has(name)
}
