// Package merge combines several model specifications and their entity
// tables into one consistent network.
//
// Reaction ids are only unique within a single specification, and
// independently authored models routinely collide on them, so merging
// renumbers first: every reaction across all inputs receives a fresh
// `prefix + counter` id, with one counter running across the whole input
// list. Stanzas are then unioned, and per-entity flux maps are merged with
// exact-text de-duplication so a reaction shared by two sub-models is not
// double-counted.
//
// The merge is a pure transform: inputs are deep-copied up front and never
// mutated, so an interrupted merge cannot leave a half-renumbered model.
package merge
