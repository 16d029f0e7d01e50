package types

import "fmt"

// Task types.
const (
	TaskTypeMilling = "milling"
)

// taskAttributes lists the document fields recognized for tasks.
var taskAttributes = []string{
	"type", "tool", "process", "bounds", "collision_models",
}

// Task binds a tool and a process to a set of models and bounds. Tasks
// reference tools, processes, bounds, and models by name; those
// collections are populated before tasks during parsing.
type Task struct {
	object
}

// NewTask constructs a task from raw document data. Construction is
// tolerant; the required type, tool, and process attributes are checked
// by Validate.
func NewTask(name string, data map[string]any) (Entity, error) {
	obj, err := newObject(name, data, taskAttributes)
	if err != nil {
		return nil, err
	}
	return &Task{object: obj}, nil
}

// Tool returns the name of the referenced tool.
func (t *Task) Tool() string {
	s, _ := t.attr("tool").(string)
	return s
}

// Process returns the name of the referenced process.
func (t *Task) Process() string {
	s, _ := t.attr("process").(string)
	return s
}

func (t *Task) Validate(res Resolver) error {
	taskType, err := t.requireString("type")
	if err != nil {
		return err
	}
	if taskType != TaskTypeMilling {
		return fmt.Errorf("%w: unknown task type %q", ErrInvalidAttribute, taskType)
	}
	tool, err := t.requireString("tool")
	if err != nil {
		return err
	}
	if err := checkReference(res, SectionTools, tool); err != nil {
		return err
	}
	process, err := t.requireString("process")
	if err != nil {
		return err
	}
	if err := checkReference(res, SectionProcesses, process); err != nil {
		return err
	}
	if t.hasAttr("bounds") {
		bounds, ok := t.attr("bounds").(string)
		if !ok {
			return fmt.Errorf("%w: bounds must be a boundary name", ErrInvalidAttribute)
		}
		if err := checkReference(res, SectionBounds, bounds); err != nil {
			return err
		}
	}
	if t.hasAttr("collision_models") {
		names, ok := stringListValue(t.attr("collision_models"))
		if !ok {
			return fmt.Errorf("%w: collision_models must be a list of model names", ErrInvalidAttribute)
		}
		for _, name := range names {
			if err := checkReference(res, SectionModels, name); err != nil {
				return err
			}
		}
	}
	return nil
}
