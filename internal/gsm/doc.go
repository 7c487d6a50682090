// Package gsm bridges genome-scale metabolic models into the kinetic
// model-specification format.
//
// A genome-scale model lives in an external flux-analysis tool; this
// package consumes it as a black box through the FluxAnalyzer interface
// (reaction compound lists, growth medium, FBA and pFBA flux tables) and
// converts its reaction network into a specification with Michaelis-Menten
// rate laws parameterized through the Variables stanza.
//
// It also parses the two condition mini-languages used when driving the
// analyzer: mutation strings overriding reaction bounds and medium-change
// strings overriding compound concentrations.
package gsm
