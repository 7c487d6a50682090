// Package odegen turns an entity table into an executable integration
// program.
//
// Compile selects the integration method, assigns state-vector slots,
// rewrites every rate law to indexed form, and compiles one derivative per
// entity. The resulting Program can be executed in-memory (Run) or rendered
// as a self-contained Go source listing (Render) carrying the initial state
// vector, the derivative bindings, the output labels, the boundary tables,
// the selected method's tableau, and the stepping loop. The listing depends
// only on the standard library.
package odegen
