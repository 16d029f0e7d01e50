package types

import "fmt"

// Process strategies.
const (
	StrategySlice   = "slice"
	StrategyContour = "contour"
	StrategySurface = "surface"
	StrategyEngrave = "engrave"
)

// validStrategies is the set of recognized process strategies.
var validStrategies = map[string]bool{
	StrategySlice:   true,
	StrategyContour: true,
	StrategySurface: true,
	StrategyEngrave: true,
}

// processAttributes lists the document fields recognized for processes.
var processAttributes = []string{
	"strategy", "path_pattern", "overlap", "step_down", "grid_direction",
	"milling_style", "spiral_direction", "rounded_corners",
	"pocketing_type", "radius_compensation", "trace_models",
}

// Process describes a machining strategy and its parameters.
type Process struct {
	object
}

// NewProcess constructs a process from raw document data. Construction
// is tolerant; the required strategy attribute is checked by Validate.
func NewProcess(name string, data map[string]any) (Entity, error) {
	obj, err := newObject(name, data, processAttributes)
	if err != nil {
		return nil, err
	}
	return &Process{object: obj}, nil
}

// Strategy returns the process strategy attribute.
func (p *Process) Strategy() string {
	s, _ := p.attr("strategy").(string)
	return s
}

func (p *Process) Validate(res Resolver) error {
	strategy, err := p.requireString("strategy")
	if err != nil {
		return err
	}
	if !validStrategies[strategy] {
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidAttribute, strategy)
	}
	if p.hasAttr("overlap") {
		overlap, ok := numberValue(p.attr("overlap"))
		if !ok || overlap < 0 || overlap > 1 {
			return fmt.Errorf("%w: overlap must be a fraction between 0 and 1", ErrInvalidAttribute)
		}
	}
	if p.hasAttr("step_down") {
		step, ok := numberValue(p.attr("step_down"))
		if !ok || step <= 0 {
			return fmt.Errorf("%w: step_down must be a positive number", ErrInvalidAttribute)
		}
	}
	if p.hasAttr("trace_models") {
		names, ok := stringListValue(p.attr("trace_models"))
		if !ok {
			return fmt.Errorf("%w: trace_models must be a list of model names", ErrInvalidAttribute)
		}
		for _, name := range names {
			if err := checkReference(res, SectionModels, name); err != nil {
				return err
			}
		}
	}
	return nil
}
