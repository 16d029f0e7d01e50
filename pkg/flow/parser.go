package flow

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/openmill/camflow/pkg/types"
)

// ParseOptions controls a Parse call.
type ParseOptions struct {
	// Excluded lists sections to skip entirely. Values must belong to
	// the section enumeration; unknown values panic.
	Excluded []types.Section

	// Reset clears each imported kind's collection before importing,
	// giving full replacement instead of merge semantics.
	Reset bool
}

// Parse reads one project document from source and fills the registry's
// collections. Sections are imported in registry order. An empty document
// is a no-op reported as a warning. A malformed top-level structure is a
// fatal error. A single item that fails construction is reported and
// skipped; every other item of every kind is still attempted.
func (f *Flow) Parse(source io.Reader, opts ParseOptions) error {
	excluded := checkSections(opts.Excluded)

	data, err := io.ReadAll(source)
	if err != nil {
		return fmt.Errorf("reading project document: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", types.ErrMalformedDocument, err)
	}

	root := documentRoot(&doc)
	if root == nil {
		f.log.Warn("ignoring empty project document")
		return nil
	}
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: top level must be a mapping of sections", types.ErrMalformedDocument)
	}

	sections := make(map[string]*yaml.Node, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		sections[root.Content[i].Value] = root.Content[i+1]
	}

	for _, kind := range types.Kinds() {
		if excluded[kind.Section] {
			continue
		}
		col := f.reg.Collection(kind.Section)
		if opts.Reset {
			col.Clear()
		}
		before := col.Len()
		f.importSection(kind, col, sections[string(kind.Section)])
		f.log.Info("imported items", "section", kind.Section, "count", col.Len()-before)
	}
	return nil
}

// importSection constructs and inserts every item found under one
// section node. A missing or null section is treated as empty.
func (f *Flow) importSection(kind types.Kind, col *types.Collection, node *yaml.Node) {
	if node == nil || node.Tag == "!!null" {
		return
	}
	if node.Kind != yaml.MappingNode {
		f.log.Error("skipping section with non-mapping content", "section", kind.Section)
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var data map[string]any
		if err := node.Content[i+1].Decode(&data); err != nil {
			f.log.Error("failed to import item", "section", kind.Section, "name", name, "error", err)
			continue
		}
		entity, err := kind.New(name, data)
		if err != nil {
			f.log.Error("failed to import item", "section", kind.Section, "name", name, "error", err)
			continue
		}
		col.Add(entity)
	}
}

// documentRoot unwraps the document node and returns its content, or nil
// when the source decodes to nothing.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == 0 {
		return nil
	}
	root := doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil
		}
		root = root.Content[0]
	}
	if root.Tag == "!!null" {
		return nil
	}
	return root
}
