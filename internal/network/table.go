package network

// EntityTable holds the entities of one specification (or one merged
// result) in Objects declaration order. That order is load-bearing: the
// indexer assigns state-vector slots by iterating it, and slot stability
// across repeated compilations is a correctness requirement for
// reproducible generated programs.
type EntityTable struct {
	order  []string
	byName map[string]*Entity
}

// NewEntityTable returns an empty entity table.
func NewEntityTable() *EntityTable {
	return &EntityTable{byName: make(map[string]*Entity)}
}

// Add inserts an entity. An entity with an existing name replaces the old
// one but keeps its position.
func (t *EntityTable) Add(e *Entity) {
	if _, ok := t.byName[e.Name]; !ok {
		t.order = append(t.order, e.Name)
	}
	t.byName[e.Name] = e
}

// Get returns the named entity.
func (t *EntityTable) Get(name string) (*Entity, bool) {
	e, ok := t.byName[name]
	return e, ok
}

// Names returns entity names in declaration order.
func (t *EntityTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of entities.
func (t *EntityTable) Len() int { return len(t.order) }

// Clone returns a deep copy of the table.
func (t *EntityTable) Clone() *EntityTable {
	c := NewEntityTable()
	for _, name := range t.order {
		c.Add(t.byName[name].Clone())
	}
	return c
}

// Index assigns each entity a state-vector slot: a single pass over the
// table in declaration order, no sorting. Slots form the contiguous range
// [0, Len) and the assignment is identical across repeated runs on the
// same specification.
func Index(t *EntityTable) map[string]int {
	slots := make(map[string]int, t.Len())
	for i, name := range t.order {
		slots[name] = i
	}
	return slots
}
