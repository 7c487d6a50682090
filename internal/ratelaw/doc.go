// Package ratelaw compiles rate-law expressions against a state-vector
// index.
//
// Rewriting replaces every whole-token occurrence of an entity name with its
// indexed accessor `y[slot]`. The expression is tokenized in a single pass
// (the HCL expression lexer), so an entity name that is a prefix, suffix, or
// substring of another token is never partially replaced — substitution
// order over the index table cannot corrupt longer names.
//
// The package also compiles rewritten expressions into evaluable form for
// in-memory simulation, and assembles per-entity derivatives as
// `(sum of influx terms) - (sum of outflux terms)` with `0` for an empty
// side.
package ratelaw
