package types

import "fmt"

// toolpathAttributes lists the document fields recognized for toolpaths.
var toolpathAttributes = []string{"source", "transformations"}

// Toolpath describes a computed path. Its source names the task it was
// generated from or another toolpath it was copied from; the moves
// themselves are owned by the engine.
type Toolpath struct {
	object
}

// NewToolpath constructs a toolpath from raw document data. Construction
// is tolerant; the required source mapping is checked by Validate.
func NewToolpath(name string, data map[string]any) (Entity, error) {
	obj, err := newObject(name, data, toolpathAttributes)
	if err != nil {
		return nil, err
	}
	return &Toolpath{object: obj}, nil
}

func (tp *Toolpath) Validate(res Resolver) error {
	source, err := tp.requireMapping("source")
	if err != nil {
		return err
	}
	sourceType, ok := source["type"].(string)
	if !ok || sourceType == "" {
		return fmt.Errorf("%w: source requires a type", ErrInvalidAttribute)
	}
	switch sourceType {
	case "task":
		item, ok := source["item"].(string)
		if !ok {
			return fmt.Errorf("%w: task source requires an item name", ErrInvalidAttribute)
		}
		if err := checkReference(res, SectionTasks, item); err != nil {
			return err
		}
	case "copy":
		item, ok := source["original"].(string)
		if !ok {
			return fmt.Errorf("%w: copy source requires an original name", ErrInvalidAttribute)
		}
		if err := checkReference(res, SectionToolpaths, item); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown toolpath source type %q", ErrInvalidAttribute, sourceType)
	}
	return nil
}
