package types

import (
	"errors"
	"testing"
)

// populated builds a registry holding one tool, process, boundary, and
// model under well-known names.
func populated(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	add := func(section Section, e Entity, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("constructing %s fixture: %v", section, err)
		}
		r.Collection(section).Add(e)
	}
	tool, err := NewTool("rough", map[string]any{"shape": ToolShapeFlatBottom, "radius": 3})
	add(SectionTools, tool, err)
	process, err := NewProcess("slicing", map[string]any{"strategy": StrategySlice, "step_down": 3.0})
	add(SectionProcesses, process, err)
	boundary, err := NewBoundary("minimal", map[string]any{
		"specification": BoundarySpecMargins,
		"lower":         []any{5, 5, 0},
		"upper":         []any{5, 5, 1},
	})
	add(SectionBounds, boundary, err)
	model, err := NewModel("box", map[string]any{"source": map[string]any{"type": "file", "location": "box.stl"}})
	add(SectionModels, model, err)
	return r
}

func TestTaskValidate(t *testing.T) {
	r := populated(t)

	tests := []struct {
		name    string
		data    map[string]any
		wantErr bool
	}{
		{
			name: "all references resolve",
			data: map[string]any{
				"type": TaskTypeMilling, "tool": "rough", "process": "slicing",
				"bounds": "minimal", "collision_models": []any{"box"},
			},
		},
		{
			name:    "unknown tool",
			data:    map[string]any{"type": TaskTypeMilling, "tool": "missing", "process": "slicing"},
			wantErr: true,
		},
		{
			name:    "unknown process",
			data:    map[string]any{"type": TaskTypeMilling, "tool": "rough", "process": "missing"},
			wantErr: true,
		},
		{
			name:    "unknown bounds",
			data:    map[string]any{"type": TaskTypeMilling, "tool": "rough", "process": "slicing", "bounds": "missing"},
			wantErr: true,
		},
		{
			name: "unknown collision model",
			data: map[string]any{
				"type": TaskTypeMilling, "tool": "rough", "process": "slicing",
				"collision_models": []any{"missing"},
			},
			wantErr: true,
		},
		{
			name:    "unknown task type",
			data:    map[string]any{"type": "engraving", "tool": "rough", "process": "slicing"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := NewTask("job", tt.data)
			if err != nil {
				t.Fatalf("NewTask: %v", err)
			}
			err = task.Validate(r)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidAttribute) {
				t.Errorf("Validate error = %v, want ErrInvalidAttribute", err)
			}
		})
	}
}

func TestToolValidate(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		name    string
		data    map[string]any
		wantErr bool
	}{
		{"valid radius", map[string]any{"shape": ToolShapeFlatBottom, "radius": 3}, false},
		{"valid diameter", map[string]any{"shape": ToolShapeBallNose, "diameter": 6.0}, false},
		{"unknown shape", map[string]any{"shape": "hexagonal", "radius": 3}, true},
		{"negative radius", map[string]any{"shape": ToolShapeFlatBottom, "radius": -1}, true},
		{"no size", map[string]any{"shape": ToolShapeFlatBottom}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, err := NewTool("t", tt.data)
			if err != nil {
				t.Fatalf("NewTool: %v", err)
			}
			if err := tool.Validate(r); (err != nil) != tt.wantErr {
				t.Errorf("Validate error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBoundaryValidate(t *testing.T) {
	r := populated(t)
	tests := []struct {
		name    string
		data    map[string]any
		wantErr bool
	}{
		{
			"margins with reference model",
			map[string]any{"specification": BoundarySpecMargins, "reference_models": []any{"box"}},
			false,
		},
		{
			"unknown reference model",
			map[string]any{"specification": BoundarySpecMargins, "reference_models": []any{"missing"}},
			true,
		},
		{
			"bad specification",
			map[string]any{"specification": "relative"},
			true,
		},
		{
			"short coordinate vector",
			map[string]any{"specification": BoundarySpecAbsolute, "lower": []any{1, 2}},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBoundary("b", tt.data)
			if err != nil {
				t.Fatalf("NewBoundary: %v", err)
			}
			if err := b.Validate(r); (err != nil) != tt.wantErr {
				t.Errorf("Validate error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	inner := errors.New("boom")
	err := &ValidationError{Section: SectionTasks, Name: "job", Err: inner}
	if got := err.Error(); got != "validation failed for tasks/job: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("Unwrap does not expose the inner error")
	}
}
