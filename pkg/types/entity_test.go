package types

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewToolConstruction(t *testing.T) {
	tests := []struct {
		name    string
		data    map[string]any
		wantErr error
	}{
		{"valid", map[string]any{"shape": ToolShapeFlatBottom, "radius": 3}, nil},
		{"missing shape accepted", map[string]any{"radius": 3}, nil},
		{"non-string shape accepted", map[string]any{"shape": 7}, nil},
		{"non-mapping extensions", map[string]any{"shape": ToolShapeFlatBottom, ExtensionKey: "oops"}, ErrInvalidAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTool("t", tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewTool error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIncompleteEntitiesFailValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (Entity, error)
		wantErr error
	}{
		{"tool missing shape", func() (Entity, error) {
			return NewTool("t", map[string]any{"radius": 3})
		}, ErrMissingAttribute},
		{"tool non-string shape", func() (Entity, error) {
			return NewTool("t", map[string]any{"shape": 7, "radius": 3})
		}, ErrInvalidAttribute},
		{"process missing strategy", func() (Entity, error) {
			return NewProcess("p", map[string]any{"overlap": 0.5})
		}, ErrMissingAttribute},
		{"boundary missing specification", func() (Entity, error) {
			return NewBoundary("b", map[string]any{})
		}, ErrMissingAttribute},
		{"task missing process", func() (Entity, error) {
			return NewTask("j", map[string]any{"type": TaskTypeMilling, "tool": "t"})
		}, ErrMissingAttribute},
		{"model missing source", func() (Entity, error) {
			return NewModel("m", map[string]any{})
		}, ErrMissingAttribute},
		{"toolpath missing source", func() (Entity, error) {
			return NewToolpath("tp", map[string]any{})
		}, ErrMissingAttribute},
		{"export missing format", func() (Entity, error) {
			return NewExport("e", map[string]any{"source": map[string]any{}})
		}, ErrMissingAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.build()
			if err != nil {
				t.Fatalf("construction failed: %v", err)
			}
			if err := e.Validate(NewRegistry()); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnrecognizedFieldsDropped(t *testing.T) {
	e, err := NewTool("t", map[string]any{
		"shape":   ToolShapeFlatBottom,
		"radius":  3,
		"made_up": "value",
	})
	if err != nil {
		t.Fatalf("NewTool: %v", err)
	}
	data := e.Externalize(true, false)
	if _, ok := data["made_up"]; ok {
		t.Error("unrecognized field survived externalization")
	}
	if data["radius"] != 3 {
		t.Errorf("radius = %v, want 3", data["radius"])
	}
}

func TestExternalizeFlags(t *testing.T) {
	ext := map[string]any{"camflow-ui": map[string]any{"name": "Big Tool"}}
	e, err := NewTool("t", map[string]any{
		"shape":      ToolShapeFlatBottom,
		"radius":     3,
		ExtensionKey: ext,
	})
	if err != nil {
		t.Fatalf("NewTool: %v", err)
	}

	t.Run("extensions included verbatim", func(t *testing.T) {
		data := e.Externalize(true, false)
		if !reflect.DeepEqual(data[ExtensionKey], ext) {
			t.Errorf("extension bag = %v, want %v", data[ExtensionKey], ext)
		}
		if _, ok := data["uuid"]; ok {
			t.Error("internal identifier leaked into externalized data")
		}
	})

	t.Run("extensions omitted", func(t *testing.T) {
		data := e.Externalize(false, false)
		if _, ok := data[ExtensionKey]; ok {
			t.Error("extension bag present with withExtensions=false")
		}
	})

	t.Run("identifier on request", func(t *testing.T) {
		data := e.Externalize(false, true)
		if data["uuid"] != e.ID() {
			t.Errorf("uuid = %v, want %v", data["uuid"], e.ID())
		}
	})
}

func TestEntityIDsAreUnique(t *testing.T) {
	a, err := NewTool("a", map[string]any{"shape": ToolShapeFlatBottom})
	if err != nil {
		t.Fatalf("NewTool: %v", err)
	}
	b, err := NewTool("a", map[string]any{"shape": ToolShapeFlatBottom})
	if err != nil {
		t.Fatalf("NewTool: %v", err)
	}
	if a.ID() == b.ID() {
		t.Error("two constructions produced the same internal identifier")
	}
	if a.ID() == "" {
		t.Error("empty internal identifier")
	}
}
