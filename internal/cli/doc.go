// Package cli defines the kinc command tree. Every subcommand builds its
// own App from the global logging flags, loads the model files it was
// given, and drives the compilation pipeline; commands write result data
// to stdout or the requested output file and diagnostics to the logger.
package cli
