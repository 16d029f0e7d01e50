package types

import "fmt"

// Tool shapes.
const (
	ToolShapeFlatBottom = "flat_bottom"
	ToolShapeBallNose   = "ball_nose"
	ToolShapeTorus      = "torus"
)

// validToolShapes is the set of recognized tool shapes.
var validToolShapes = map[string]bool{
	ToolShapeFlatBottom: true,
	ToolShapeBallNose:   true,
	ToolShapeTorus:      true,
}

// toolAttributes lists the document fields recognized for tools.
var toolAttributes = []string{
	"tool_id", "shape", "radius", "diameter", "toroid_radius",
	"feed", "spindle_speed", "spindle",
}

// Tool describes a milling bit: its shape, size, and feed parameters.
type Tool struct {
	object
}

// NewTool constructs a tool from raw document data. Construction is
// tolerant; required attributes such as shape are checked by Validate.
func NewTool(name string, data map[string]any) (Entity, error) {
	obj, err := newObject(name, data, toolAttributes)
	if err != nil {
		return nil, err
	}
	return &Tool{object: obj}, nil
}

// Shape returns the tool's shape attribute.
func (t *Tool) Shape() string {
	s, _ := t.attr("shape").(string)
	return s
}

func (t *Tool) Validate(res Resolver) error {
	shape, err := t.requireString("shape")
	if err != nil {
		return err
	}
	if !validToolShapes[shape] {
		return fmt.Errorf("%w: unknown tool shape %q", ErrInvalidAttribute, shape)
	}
	for _, key := range []string{"radius", "diameter", "toroid_radius", "feed", "spindle_speed"} {
		if !t.hasAttr(key) {
			continue
		}
		n, ok := numberValue(t.attr(key))
		if !ok || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number", ErrInvalidAttribute, key)
		}
	}
	if !t.hasAttr("radius") && !t.hasAttr("diameter") {
		return fmt.Errorf("%w: radius or diameter", ErrMissingAttribute)
	}
	return nil
}
