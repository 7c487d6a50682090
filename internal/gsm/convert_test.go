package gsm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
)

func coreReactions() []Reaction {
	return []Reaction{
		{Index: 0, ID: "PGI", Reactants: []string{"g6p_c"}, Products: []string{"f6p_c"}, Name: "phosphoglucose isomerase"},
		{Index: 1, ID: "PFK", Reactants: []string{"f6p_c", "atp_c"}, Products: []string{"fdp_c", "adp_c"}, Name: "phosphofructokinase"},
	}
}

func TestConvert_BuildsAllStanzas(t *testing.T) {
	opts := DefaultConvertOptions()
	opts.ModelName = "e_coli_core"
	opts.Author = "kw"

	spec := Convert(context.Background(), coreReactions(), nil, opts)

	v, err := spec.Get(modelspec.StanzaSpecification, "type")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	name, _ := spec.Raw(modelspec.StanzaIdentifiers, "name")
	assert.Equal(t, "e_coli_core", name)

	assert.Equal(t, []string{"m_g6p_c", "m_f6p_c", "m_atp_c", "m_fdp_c", "m_adp_c"},
		spec.Keys(modelspec.StanzaObjects))
	assert.Equal(t, []string{"R0", "R1"}, spec.Keys(modelspec.StanzaReactions))
}

func TestConvert_WritesMichaelisMentenRateLaws(t *testing.T) {
	opts := DefaultConvertOptions()
	spec := Convert(context.Background(), coreReactions(), nil, opts)

	raw, ok := spec.Raw(modelspec.StanzaReactions, "R1")
	require.True(t, ok)
	assert.Equal(t,
		"m_f6p_c + m_atp_c -> m_fdp_c + m_adp_c | "+
			"(${Variables:m_PFK_kcat} * ${Variables:m_PFK_conc} * m_f6p_c * m_atp_c)"+
			"/(${Variables:m_PFK_km} + ${Variables:m_PFK_conc} * m_f6p_c * m_atp_c)",
		raw)

	for _, key := range []string{"m_PFK_conc", "m_PFK_kcat", "m_PFK_km"} {
		assert.True(t, spec.EnsureStanza(modelspec.StanzaVariables).Has(key), key)
	}
}

func TestConvert_MediumOverridesInitials(t *testing.T) {
	opts := DefaultConvertOptions()
	medium := []MediumEntry{{Compound: "g6p_c", Value: 2.5e-4}}

	spec := Convert(context.Background(), coreReactions(), medium, opts)

	v, _ := spec.Raw(modelspec.StanzaInitials, "m_g6p_c")
	assert.Equal(t, "0.00025", v)
	v, _ = spec.Raw(modelspec.StanzaInitials, "m_f6p_c")
	assert.Equal(t, "1e-05", v)
}

func TestConvert_OutputFeedsTheModelPipeline(t *testing.T) {
	// The converted specification must survive a write/load round trip and
	// build into an entity table.
	opts := DefaultConvertOptions()
	opts.ModelName = "core"
	ctx := context.Background()

	spec := Convert(ctx, coreReactions(), nil, opts)
	table, err := network.Build(ctx, spec)
	require.NoError(t, err)

	require.Equal(t, 5, table.Len())
	g6p, _ := table.Get("m_g6p_c")
	eq, ok := g6p.Outflux.Get("R0")
	require.True(t, ok)
	// Extended-mode resolution inlined the kinetic constants.
	assert.Contains(t, eq, "13.7")
	assert.NotContains(t, eq, "${")
}

func TestConvert_ExchangeReactionWithoutReactants(t *testing.T) {
	reactions := []Reaction{
		{Index: 0, ID: "EX_glc", Reactants: nil, Products: []string{"glc__D_e"}},
	}
	spec := Convert(context.Background(), reactions, nil, DefaultConvertOptions())

	raw, _ := spec.Raw(modelspec.StanzaReactions, "R0")
	assert.Contains(t, raw, " -> m_glc__D_e | ")
	assert.NotContains(t, raw, "* )")
}
