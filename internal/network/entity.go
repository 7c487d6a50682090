package network

// FluxMap is an ordered mapping from reaction id to rate-law expression.
// Insertion order is preserved so derivative terms render deterministically.
type FluxMap struct {
	order []string
	eqs   map[string]string
}

// NewFluxMap returns an empty flux map.
func NewFluxMap() *FluxMap {
	return &FluxMap{eqs: make(map[string]string)}
}

// Set records the rate-law expression for a reaction id. An existing id
// keeps its position; a new id is appended.
func (m *FluxMap) Set(id, eq string) {
	if _, ok := m.eqs[id]; !ok {
		m.order = append(m.order, id)
	}
	m.eqs[id] = eq
}

// Get returns the expression recorded for the reaction id.
func (m *FluxMap) Get(id string) (string, bool) {
	eq, ok := m.eqs[id]
	return eq, ok
}

// IDs returns the reaction ids in insertion order.
func (m *FluxMap) IDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of recorded fluxes.
func (m *FluxMap) Len() int { return len(m.order) }

// Rename rekeys old to new, preserving position. A no-op when old is absent.
func (m *FluxMap) Rename(old, new string) {
	eq, ok := m.eqs[old]
	if !ok || old == new {
		return
	}
	delete(m.eqs, old)
	m.eqs[new] = eq
	for i, id := range m.order {
		if id == old {
			m.order[i] = new
			break
		}
	}
}

// Delete removes the flux recorded for a reaction id, if any.
func (m *FluxMap) Delete(id string) {
	if _, ok := m.eqs[id]; !ok {
		return
	}
	delete(m.eqs, id)
	for i, k := range m.order {
		if k == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// ContainsExpr reports whether any recorded flux has exactly the given
// expression text. Used by model merging to suppress duplicate
// contributions shared by two sub-models.
func (m *FluxMap) ContainsExpr(eq string) bool {
	for _, v := range m.eqs {
		if v == eq {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the flux map.
func (m *FluxMap) Clone() *FluxMap {
	c := &FluxMap{
		order: make([]string, len(m.order)),
		eqs:   make(map[string]string, len(m.eqs)),
	}
	copy(c.order, m.order)
	for k, v := range m.eqs {
		c.eqs[k] = v
	}
	return c
}

// Entity is one modeled biochemical species: a node of the reaction graph
// with an initial state value and the fluxes that produce and consume it.
type Entity struct {
	Name        string
	Description string
	Initial     float64
	Influx      *FluxMap
	Outflux     *FluxMap
}

// NewEntity returns an entity with empty flux maps and a zero initial value.
func NewEntity(name, description string) *Entity {
	return &Entity{
		Name:        name,
		Description: description,
		Influx:      NewFluxMap(),
		Outflux:     NewFluxMap(),
	}
}

// Clone returns a deep copy of the entity.
func (e *Entity) Clone() *Entity {
	return &Entity{
		Name:        e.Name,
		Description: e.Description,
		Initial:     e.Initial,
		Influx:      e.Influx.Clone(),
		Outflux:     e.Outflux.Clone(),
	}
}
