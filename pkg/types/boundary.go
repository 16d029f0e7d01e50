package types

import "fmt"

// Boundary specifications.
const (
	BoundarySpecMargins  = "margins"
	BoundarySpecAbsolute = "absolute"
)

// boundaryAttributes lists the document fields recognized for bounds.
var boundaryAttributes = []string{
	"specification", "lower", "upper", "reference_models", "tool_boundary",
}

// Boundary describes the machining limits for a task, either as margins
// around reference models or as absolute coordinates.
type Boundary struct {
	object
}

// NewBoundary constructs a boundary from raw document data. Construction
// is tolerant; the required specification attribute is checked by
// Validate.
func NewBoundary(name string, data map[string]any) (Entity, error) {
	obj, err := newObject(name, data, boundaryAttributes)
	if err != nil {
		return nil, err
	}
	return &Boundary{object: obj}, nil
}

func (b *Boundary) Validate(res Resolver) error {
	spec, err := b.requireString("specification")
	if err != nil {
		return err
	}
	if spec != BoundarySpecMargins && spec != BoundarySpecAbsolute {
		return fmt.Errorf("%w: unknown boundary specification %q", ErrInvalidAttribute, spec)
	}
	for _, key := range []string{"lower", "upper"} {
		if !b.hasAttr(key) {
			continue
		}
		seq, ok := b.attr(key).([]any)
		if !ok || len(seq) != 3 {
			return fmt.Errorf("%w: %s must be a sequence of three coordinates", ErrInvalidAttribute, key)
		}
		for _, coord := range seq {
			if _, ok := numberValue(coord); !ok {
				return fmt.Errorf("%w: %s coordinates must be numbers", ErrInvalidAttribute, key)
			}
		}
	}
	if b.hasAttr("reference_models") {
		names, ok := stringListValue(b.attr("reference_models"))
		if !ok {
			return fmt.Errorf("%w: reference_models must be a list of model names", ErrInvalidAttribute)
		}
		for _, name := range names {
			if err := checkReference(res, SectionModels, name); err != nil {
				return err
			}
		}
	}
	return nil
}
