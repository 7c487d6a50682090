// Package app wires the model-compilation pipeline into a runnable
// application: logger construction, model file loading across the
// supported formats, and snapshot persistence. Commands construct one App
// per invocation and derive their context from it.
package app
