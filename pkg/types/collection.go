package types

// Collection is an ordered, name-keyed container of entities of one kind.
// Names are unique within a collection; insertion order is preserved so
// that re-serialization is deterministic. Adding an entity under an
// existing name replaces the prior entity but keeps its position.
//
// Collections have no internal locking. A single logical writer is assumed
// to run parse, dump, and validate at a time; concurrent callers need an
// external mutex.
type Collection struct {
	order []string
	items map[string]Entity
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{items: make(map[string]Entity)}
}

// Add inserts an entity under its name. A name collision overwrites the
// prior entity in place (last write wins).
func (c *Collection) Add(e Entity) {
	name := e.Name()
	if _, exists := c.items[name]; !exists {
		c.order = append(c.order, name)
	}
	c.items[name] = e
}

// Get returns the entity stored under name.
func (c *Collection) Get(name string) (Entity, bool) {
	e, ok := c.items[name]
	return e, ok
}

// Has reports whether an entity is stored under name.
func (c *Collection) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Len returns the number of entities in the collection.
func (c *Collection) Len() int {
	return len(c.order)
}

// Names returns the entity names in insertion order.
func (c *Collection) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Entities returns the entities in insertion order.
func (c *Collection) Entities() []Entity {
	out := make([]Entity, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.items[name])
	}
	return out
}

// Clear removes all entities. Used when a caller requests full
// replacement of the collection's contents.
func (c *Collection) Clear() {
	c.order = c.order[:0]
	c.items = make(map[string]Entity)
}
