// Package network builds the entity/reaction graph of a model specification.
//
// Each entry of the Objects stanza becomes an Entity carrying its initial
// value and two flux maps: influx (reactions producing the entity) and
// outflux (reactions consuming it), each keyed by reaction id with the
// reaction's rate-law expression as value. Reaction sides that reference an
// undeclared entity are dropped with a logged warning — draft biological
// models routinely name boundary pseudo-metabolites, so graph building keeps
// going on partially inconsistent input.
package network
