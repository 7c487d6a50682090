package modelspec

import (
	"fmt"
)

// Mode selects how values are resolved when read back from a Specification.
type Mode string

const (
	// ModeBasic returns stored values verbatim.
	ModeBasic Mode = "basic"
	// ModeExtended resolves ${Stanza:key} references recursively at read time.
	ModeExtended Mode = "extended"
)

// Canonical stanza names of a model specification.
const (
	StanzaSpecification = "Specification"
	StanzaIdentifiers   = "Identifiers"
	StanzaObjects       = "Objects"
	StanzaInitials      = "Initials"
	StanzaVariables     = "Variables"
	StanzaReactions     = "Reactions"
)

// Stanza is one named section of a specification: an ordered mapping from
// textual keys to textual values. Keys are case-sensitive and unique within
// a stanza; setting an existing key overwrites its value in place.
type Stanza struct {
	name  string
	order []string
	vals  map[string]string
}

// Name returns the stanza's section name.
func (st *Stanza) Name() string { return st.name }

// Keys returns the stanza's keys in declaration order.
func (st *Stanza) Keys() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

// Len returns the number of keys in the stanza.
func (st *Stanza) Len() int { return len(st.order) }

// Has reports whether the stanza contains the given key.
func (st *Stanza) Has(key string) bool {
	_, ok := st.vals[key]
	return ok
}

// Raw returns the stored value for key without any interpolation.
func (st *Stanza) Raw(key string) (string, bool) {
	v, ok := st.vals[key]
	return v, ok
}

// Set stores value under key. An existing key keeps its position in the
// declaration order; a new key is appended.
func (st *Stanza) Set(key, value string) {
	if _, ok := st.vals[key]; !ok {
		st.order = append(st.order, key)
	}
	st.vals[key] = value
}

// Delete removes key from the stanza. Deleting an absent key is a no-op.
func (st *Stanza) Delete(key string) {
	if _, ok := st.vals[key]; !ok {
		return
	}
	delete(st.vals, key)
	for i, k := range st.order {
		if k == key {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
}

// Rename changes a key's name while preserving its value and position.
// It is a no-op when old is absent; an existing new key is overwritten
// and its old position dropped.
func (st *Stanza) Rename(old, new string) {
	v, ok := st.vals[old]
	if !ok || old == new {
		return
	}
	if _, clash := st.vals[new]; clash {
		st.Delete(new)
	}
	delete(st.vals, old)
	st.vals[new] = v
	for i, k := range st.order {
		if k == old {
			st.order[i] = new
			break
		}
	}
}

// clone returns a deep copy of the stanza.
func (st *Stanza) clone() *Stanza {
	c := &Stanza{
		name:  st.name,
		order: make([]string, len(st.order)),
		vals:  make(map[string]string, len(st.vals)),
	}
	copy(c.order, st.order)
	for k, v := range st.vals {
		c.vals[k] = v
	}
	return c
}

// Specification is an ordered collection of named stanzas parsed from a
// model specification document. It is created by Load/Parse (or stanza by
// stanza via EnsureStanza) and is not safe for concurrent mutation.
type Specification struct {
	mode    Mode
	order   []string
	stanzas map[string]*Stanza
}

// New returns an empty specification resolving values in the given mode.
func New(mode Mode) *Specification {
	return &Specification{
		mode:    mode,
		stanzas: make(map[string]*Stanza),
	}
}

// Mode returns the specification's value-resolution mode.
func (s *Specification) Mode() Mode { return s.mode }

// SetMode changes the value-resolution mode. Stored values are raw, so the
// mode may be switched at any time.
func (s *Specification) SetMode(mode Mode) { s.mode = mode }

// Stanza returns the named stanza, if present.
func (s *Specification) Stanza(name string) (*Stanza, bool) {
	st, ok := s.stanzas[name]
	return st, ok
}

// EnsureStanza returns the named stanza, creating an empty one if absent.
func (s *Specification) EnsureStanza(name string) *Stanza {
	if st, ok := s.stanzas[name]; ok {
		return st
	}
	st := &Stanza{name: name, vals: make(map[string]string)}
	s.stanzas[name] = st
	s.order = append(s.order, name)
	return st
}

// StanzaNames returns the stanza names in declaration order.
func (s *Specification) StanzaNames() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Keys returns the declaration-ordered keys of the named stanza, or nil if
// the stanza is absent.
func (s *Specification) Keys(stanza string) []string {
	st, ok := s.stanzas[stanza]
	if !ok {
		return nil
	}
	return st.Keys()
}

// Get returns the value stored under stanza/key, resolved according to the
// specification's mode. In extended mode ${Stanza:key} references are
// expanded recursively; an unresolvable reference or a reference cycle is
// an error.
func (s *Specification) Get(stanza, key string) (string, error) {
	st, ok := s.stanzas[stanza]
	if !ok {
		return "", fmt.Errorf("%w: [%s]", ErrStanzaNotFound, stanza)
	}
	raw, ok := st.vals[key]
	if !ok {
		return "", fmt.Errorf("%w: [%s] %s", ErrKeyNotFound, stanza, key)
	}
	if s.mode == ModeBasic {
		return raw, nil
	}
	return s.resolve(raw, map[string]bool{stanza + ":" + key: true})
}

// Raw returns the stored value for stanza/key without interpolation.
func (s *Specification) Raw(stanza, key string) (string, bool) {
	st, ok := s.stanzas[stanza]
	if !ok {
		return "", false
	}
	return st.Raw(key)
}

// Clone returns a deep copy of the specification in the same mode.
func (s *Specification) Clone() *Specification {
	c := New(s.mode)
	for _, name := range s.order {
		c.order = append(c.order, name)
		c.stanzas[name] = s.stanzas[name].clone()
	}
	return c
}
