package types

import "fmt"

// modelAttributes lists the document fields recognized for models.
var modelAttributes = []string{"source", "transformations"}

// Model describes an input geometry: where it comes from and the
// transformations applied to it. The geometry itself is owned by the
// engine; only the description is persisted.
type Model struct {
	object
}

// NewModel constructs a model from raw document data. Construction is
// tolerant; the required source mapping is checked by Validate.
func NewModel(name string, data map[string]any) (Entity, error) {
	obj, err := newObject(name, data, modelAttributes)
	if err != nil {
		return nil, err
	}
	return &Model{object: obj}, nil
}

func (m *Model) Validate(res Resolver) error {
	source, err := m.requireMapping("source")
	if err != nil {
		return err
	}
	sourceType, ok := source["type"].(string)
	if !ok || sourceType == "" {
		return fmt.Errorf("%w: source requires a type", ErrInvalidAttribute)
	}
	if m.hasAttr("transformations") {
		if _, ok := m.attr("transformations").([]any); !ok {
			return fmt.Errorf("%w: transformations must be a sequence", ErrInvalidAttribute)
		}
	}
	return nil
}
