// Package modelspec loads, resolves, and writes kinetic model specification
// files.
//
// A specification is a section-delimited text document with five stanzas —
// Identifiers, Objects, Initials, Variables, and Reactions — holding
// `key = value` (or `key : value`) pairs. Lines starting with `#` or `;` are
// comments. In extended mode a value may reference another entry with the
// `${Stanza:key}` syntax; references are resolved lazily at read time and a
// reference cycle is a hard error. Basic mode returns values verbatim.
package modelspec
