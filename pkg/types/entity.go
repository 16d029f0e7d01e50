package types

import (
	"fmt"

	"github.com/google/uuid"
)

// ExtensionKey is the document field under which consumer-namespaced
// extension data is stored on every entity. The sub-mapping is keyed by
// consumer identifier (for example a specific front-end) and round-trips
// through load and save without interpretation.
const ExtensionKey = "X-Application"

// Entity is one named item of a single kind. Entities are opaque to the
// persistence layer beyond this contract: they carry a collection name, an
// internal identifier that never appears in serialized output, and they
// can externalize and validate themselves.
type Entity interface {
	// Name returns the collection key of the entity.
	Name() string

	// ID returns the internal identifier (a UUID) used for cross-session
	// object identity. It is never included in serialized documents.
	ID() string

	// Externalize returns the entity as raw document data. The extension
	// bag is included only when withExtensions is set; the internal
	// identifier only when withID is set.
	Externalize(withExtensions, withID bool) map[string]any

	// Validate checks the entity's own attributes and resolves any name
	// references into other collections through res.
	Validate(res Resolver) error
}

// Resolver reports whether a named entity exists in a section's
// collection. The Registry implements it; validation uses it to check
// cross-collection references.
type Resolver interface {
	Has(section Section, name string) bool
}

// object carries the fields shared by every entity kind: the collection
// key, the internal identifier, the recognized attributes, and the
// extension bag.
type object struct {
	name       string
	id         string
	attrs      map[string]any
	extensions map[string]any
}

// newObject splits raw document data into recognized attributes and the
// extension bag. Fields outside the recognized set are dropped. A fresh
// internal identifier is assigned on every construction.
func newObject(name string, data map[string]any, recognized []string) (object, error) {
	obj := object{
		name:  name,
		id:    newEntityID(),
		attrs: make(map[string]any, len(data)),
	}
	for _, key := range recognized {
		if v, ok := data[key]; ok {
			obj.attrs[key] = v
		}
	}
	if raw, ok := data[ExtensionKey]; ok {
		ext, ok := raw.(map[string]any)
		if !ok {
			return object{}, fmt.Errorf("%w: %s must be a mapping", ErrInvalidAttribute, ExtensionKey)
		}
		obj.extensions = ext
	}
	return obj, nil
}

// newEntityID generates a UUID v7, falling back to v4 when the monotonic
// clock source fails.
func newEntityID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

func (o *object) Name() string { return o.name }

func (o *object) ID() string { return o.id }

func (o *object) Externalize(withExtensions, withID bool) map[string]any {
	out := make(map[string]any, len(o.attrs)+2)
	for k, v := range o.attrs {
		out[k] = v
	}
	if withExtensions && len(o.extensions) > 0 {
		out[ExtensionKey] = o.extensions
	}
	if withID {
		out["uuid"] = o.id
	}
	return out
}

// attr returns a recognized attribute value, or nil if absent.
func (o *object) attr(key string) any {
	return o.attrs[key]
}

// hasAttr reports whether a recognized attribute is present.
func (o *object) hasAttr(key string) bool {
	_, ok := o.attrs[key]
	return ok
}

// requireString returns the named attribute as a string.
// Fails if the attribute is absent or not a string.
func (o *object) requireString(key string) (string, error) {
	v, ok := o.attrs[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingAttribute, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidAttribute, key)
	}
	return s, nil
}

// requireMapping returns the named attribute as a mapping.
// Fails if the attribute is absent or not a mapping.
func (o *object) requireMapping(key string) (map[string]any, error) {
	v, ok := o.attrs[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingAttribute, key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a mapping", ErrInvalidAttribute, key)
	}
	return m, nil
}

// numberValue converts a decoded YAML scalar to float64.
func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// stringListValue converts a decoded YAML sequence to a string slice.
func stringListValue(v any) ([]string, bool) {
	seq, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(seq))
	for _, item := range seq {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// checkReference verifies that a named entity exists in the given section.
func checkReference(res Resolver, section Section, name string) error {
	if !res.Has(section, name) {
		return fmt.Errorf("%w: unknown %s reference %q", ErrInvalidAttribute, section, name)
	}
	return nil
}
