package flow

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/openmill/camflow/pkg/types"
)

// Dump serializes the registry's collections into a project document and
// returns it. Sections appear in registry order, entities in insertion
// order; internal identifiers are omitted and extension data is included
// verbatim. Output is deterministic for a given registry state.
func (f *Flow) Dump(excluded ...types.Section) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.DumpTo(&buf, excluded...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DumpTo streams the serialized document to w. It produces byte-identical
// content to Dump for the same registry state and exclusion set.
func (f *Flow) DumpTo(w io.Writer, excluded ...types.Section) error {
	skip := checkSections(excluded)

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, kind := range types.Kinds() {
		if skip[kind.Section] {
			continue
		}
		section, err := f.sectionNode(kind.Section)
		if err != nil {
			return err
		}
		root.Content = append(root.Content, scalarNode(string(kind.Section)), section)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		enc.Close()
		return fmt.Errorf("encoding project document: %w", err)
	}
	return enc.Close()
}

// sectionNode builds the mapping node for one section, keyed by entity
// name in insertion order. Entity data is externalized without the
// internal identifier and with extension data.
func (f *Flow) sectionNode(section types.Section) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range f.reg.Collection(section).Entities() {
		var data yaml.Node
		if err := data.Encode(e.Externalize(true, false)); err != nil {
			return nil, fmt.Errorf("encoding %s/%s: %w", section, e.Name(), err)
		}
		node.Content = append(node.Content, scalarNode(e.Name()), &data)
	}
	return node, nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
