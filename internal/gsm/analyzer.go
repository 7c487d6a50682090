package gsm

import "context"

// Analysis selects a flux-balance method.
type Analysis string

const (
	// FBA is standard flux balance analysis.
	FBA Analysis = "FBA"
	// PFBA is parsimonious flux balance analysis.
	PFBA Analysis = "pFBA"
)

// Reaction is one genome-scale reaction with its compound lists, as
// reported by the external analyzer.
type Reaction struct {
	Index     int      `json:"index"`
	ID        string   `json:"id"`
	Reactants []string `json:"reactants"`
	Products  []string `json:"products"`
	Name      string   `json:"name"`
}

// MediumEntry is one growth-medium compound and its concentration.
type MediumEntry struct {
	Compound string  `json:"compound"`
	Value    float64 `json:"value"`
}

// FluxResult is the outcome of one flux-balance run.
type FluxResult struct {
	Objective float64
	// Fluxes maps reaction id to steady-state flux.
	Fluxes map[string]float64
}

// FluxAnalyzer is the black-box interface to an external genome-scale
// modeling tool. Implementations load the named model themselves; this
// package never inspects model internals beyond what these methods return.
type FluxAnalyzer interface {
	// Reactions lists every reaction of the model with its compounds.
	Reactions(ctx context.Context, model string) ([]Reaction, error)
	// Medium lists the model's growth-medium compounds.
	Medium(ctx context.Context, model string) ([]MediumEntry, error)
	// FluxBalance runs the selected analysis on the unmodified model.
	FluxBalance(ctx context.Context, model string, analysis Analysis) (*FluxResult, error)
	// MutantFluxBalance runs the analysis with reaction bounds overridden.
	MutantFluxBalance(ctx context.Context, model string, mutations map[string]Mutation, analysis Analysis) (*FluxResult, error)
	// MediumFluxBalance runs the analysis with medium concentrations overridden.
	MediumFluxBalance(ctx context.Context, model string, changes map[string]float64, analysis Analysis) (*FluxResult, error)
}
