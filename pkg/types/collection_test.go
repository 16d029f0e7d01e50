package types

import (
	"reflect"
	"testing"
)

func mustTool(t *testing.T, name string, data map[string]any) Entity {
	t.Helper()
	e, err := NewTool(name, data)
	if err != nil {
		t.Fatalf("NewTool(%q): %v", name, err)
	}
	return e
}

func TestCollectionInsertionOrder(t *testing.T) {
	c := NewCollection()
	c.Add(mustTool(t, "rough", map[string]any{"shape": ToolShapeFlatBottom, "radius": 3}))
	c.Add(mustTool(t, "fine", map[string]any{"shape": ToolShapeBallNose, "radius": 1}))
	c.Add(mustTool(t, "medium", map[string]any{"shape": ToolShapeFlatBottom, "radius": 2}))

	want := []string{"rough", "fine", "medium"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestCollectionOverwriteKeepsPosition(t *testing.T) {
	c := NewCollection()
	c.Add(mustTool(t, "a", map[string]any{"shape": ToolShapeFlatBottom, "radius": 1}))
	c.Add(mustTool(t, "b", map[string]any{"shape": ToolShapeFlatBottom, "radius": 2}))
	c.Add(mustTool(t, "a", map[string]any{"shape": ToolShapeBallNose, "radius": 9}))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d after overwrite, want 2", c.Len())
	}
	want := []string{"a", "b"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	e, ok := c.Get("a")
	if !ok {
		t.Fatal("Get(a) not found")
	}
	if got := e.Externalize(false, false)["radius"]; got != 9 {
		t.Errorf("overwritten entity radius = %v, want 9", got)
	}
}

func TestCollectionClear(t *testing.T) {
	c := NewCollection()
	c.Add(mustTool(t, "a", map[string]any{"shape": ToolShapeFlatBottom, "radius": 1}))
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", c.Len())
	}
	if c.Has("a") {
		t.Error("Has(a) = true after Clear")
	}
	if got := c.Names(); len(got) != 0 {
		t.Errorf("Names() = %v after Clear, want empty", got)
	}
}

func TestRegistryCollectionIdentity(t *testing.T) {
	r := NewRegistry()
	first := r.Collection(SectionTools)
	second := r.Collection(SectionTools)
	if first != second {
		t.Error("Collection returned different instances for the same section")
	}

	first.Add(mustTool(t, "a", map[string]any{"shape": ToolShapeFlatBottom, "radius": 1}))
	if !r.Has(SectionTools, "a") {
		t.Error("Has(tools, a) = false after Add")
	}
	if r.Has(SectionProcesses, "a") {
		t.Error("Has(processes, a) = true, want false")
	}
}
