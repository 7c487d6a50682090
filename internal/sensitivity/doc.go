// Package sensitivity implements one-factor-at-a-time local sensitivity
// analysis over a model specification.
//
// A series is generated by multiplying each Variables entry in turn by a
// common factor, writing one perturbed specification per parameter plus
// the unmodified original. Analysis compiles and simulates every member of
// the series and records the results, one CSV row block per parameter,
// with the perturbations simulated concurrently.
package sensitivity
