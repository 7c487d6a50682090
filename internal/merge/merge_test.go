package merge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
)

// pathwaySpec builds a one-reaction model with the given reaction id.
func pathwaySpec(t *testing.T, name, rxnID, rateEq string) *modelspec.Specification {
	t.Helper()
	spec := modelspec.New(modelspec.ModeExtended)
	spec.EnsureStanza(modelspec.StanzaIdentifiers).Set("name", name)
	objects := spec.EnsureStanza(modelspec.StanzaObjects)
	objects.Set("A", "substrate")
	objects.Set("B", "product")
	initials := spec.EnsureStanza(modelspec.StanzaInitials)
	initials.Set("A", "1.0")
	initials.Set("B", "0.0")
	spec.EnsureStanza(modelspec.StanzaReactions).Set(rxnID, "A -> B | "+rateEq)
	return spec
}

func buildTables(t *testing.T, specs ...*modelspec.Specification) []*network.EntityTable {
	t.Helper()
	tables := make([]*network.EntityTable, len(specs))
	for i, s := range specs {
		table, err := network.Build(context.Background(), s)
		require.NoError(t, err)
		tables[i] = table
	}
	return tables
}

func TestMerge_RenumbersCollidingReactionIDs(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")
	s2 := pathwaySpec(t, "two", "r1", "0.2 * A")

	merged, _, err := Merge(ctx, []*modelspec.Specification{s1, s2}, nil, Options{
		Prefix:     "exp",
		MergeSpecs: true,
	})
	require.NoError(t, err)

	rxns, ok := merged.Stanza(modelspec.StanzaReactions)
	require.True(t, ok)
	assert.Equal(t, []string{"exp1", "exp2"}, rxns.Keys())
	assert.False(t, rxns.Has("r1"))

	v1, _ := rxns.Raw("exp1")
	v2, _ := rxns.Raw("exp2")
	assert.Equal(t, "A -> B | 0.1 * A", v1)
	assert.Equal(t, "A -> B | 0.2 * A", v2)
}

func TestMerge_CounterRunsAcrossAllModels(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")
	s1.EnsureStanza(modelspec.StanzaReactions).Set("r2", "B -> | 0.01 * B")
	s2 := pathwaySpec(t, "two", "r1", "0.2 * A")

	merged, _, err := Merge(ctx, []*modelspec.Specification{s1, s2}, nil, Options{
		Prefix:     "exp",
		MergeSpecs: true,
	})
	require.NoError(t, err)

	rxns, _ := merged.Stanza(modelspec.StanzaReactions)
	assert.Equal(t, []string{"exp1", "exp2", "exp3"}, rxns.Keys())
}

func TestMerge_SuffixesIdentifierKeysByModelOrdinal(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")
	s2 := pathwaySpec(t, "two", "r1", "0.2 * A")

	merged, _, err := Merge(ctx, []*modelspec.Specification{s1, s2}, nil, Options{
		Prefix:     "exp",
		MergeSpecs: true,
	})
	require.NoError(t, err)

	ids, _ := merged.Stanza(modelspec.StanzaIdentifiers)
	v, _ := ids.Raw("name")
	assert.Equal(t, "one", v)
	v, ok := ids.Raw("name_2")
	require.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestMerge_SelfMergeDeduplicatesFluxes(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")
	s2 := pathwaySpec(t, "one", "r1", "0.1 * A")
	tables := buildTables(t, s1, s2)

	mergedSpec, mergedTable, err := Merge(ctx,
		[]*modelspec.Specification{s1, s2}, tables, Options{
			Prefix:      "exp",
			MergeSpecs:  true,
			MergeTables: true,
		})
	require.NoError(t, err)

	// The stanza union holds both renumbered reactions.
	rxns, _ := mergedSpec.Stanza(modelspec.StanzaReactions)
	assert.Equal(t, 2, rxns.Len())

	// The flux union suppresses the textually identical contribution.
	a, ok := mergedTable.Get("A")
	require.True(t, ok)
	assert.Equal(t, []string{"exp1"}, a.Outflux.IDs())
	b, _ := mergedTable.Get("B")
	assert.Equal(t, []string{"exp1"}, b.Influx.IDs())
}

func TestMerge_DistinctFluxesBothSurvive(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")
	s2 := pathwaySpec(t, "two", "r1", "0.2 * A")
	tables := buildTables(t, s1, s2)

	_, mergedTable, err := Merge(ctx,
		[]*modelspec.Specification{s1, s2}, tables, Options{
			Prefix:      "exp",
			MergeSpecs:  true,
			MergeTables: true,
		})
	require.NoError(t, err)

	a, _ := mergedTable.Get("A")
	assert.Equal(t, []string{"exp1", "exp2"}, a.Outflux.IDs())
}

func TestMerge_InsertsEntitiesAbsentFromTheBase(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")
	s2 := pathwaySpec(t, "two", "r1", "0.2 * A")
	s2.EnsureStanza(modelspec.StanzaObjects).Set("C", "byproduct")
	s2.EnsureStanza(modelspec.StanzaReactions).Set("r9", "B -> C | 0.3 * B")
	tables := buildTables(t, s1, s2)

	_, mergedTable, err := Merge(ctx,
		[]*modelspec.Specification{s1, s2}, tables, Options{
			Prefix:      "exp",
			MergeSpecs:  true,
			MergeTables: true,
		})
	require.NoError(t, err)

	c, ok := mergedTable.Get("C")
	require.True(t, ok)
	assert.Equal(t, []string{"exp3"}, c.Influx.IDs())
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")
	s2 := pathwaySpec(t, "two", "r1", "0.2 * A")
	tables := buildTables(t, s1, s2)

	_, _, err := Merge(ctx, []*modelspec.Specification{s1, s2}, tables, Options{
		Prefix:      "exp",
		MergeSpecs:  true,
		MergeTables: true,
	})
	require.NoError(t, err)

	for _, s := range []*modelspec.Specification{s1, s2} {
		rxns, _ := s.Stanza(modelspec.StanzaReactions)
		assert.Equal(t, []string{"r1"}, rxns.Keys())
	}
	a, _ := tables[0].Get("A")
	assert.Equal(t, []string{"r1"}, a.Outflux.IDs())
}

func TestMerge_SpecsOnlyLeavesTableNil(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")

	spec, table, err := Merge(ctx, []*modelspec.Specification{s1}, nil, Options{
		Prefix:     "exp",
		MergeSpecs: true,
	})
	require.NoError(t, err)
	assert.NotNil(t, spec)
	assert.Nil(t, table)
}

func TestMerge_EmptyInputFails(t *testing.T) {
	_, _, err := Merge(context.Background(), nil, nil, Options{Prefix: "exp"})
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestMerge_TableCountMismatchFails(t *testing.T) {
	ctx := context.Background()
	s1 := pathwaySpec(t, "one", "r1", "0.1 * A")

	_, _, err := Merge(ctx, []*modelspec.Specification{s1}, nil, Options{
		Prefix:      "exp",
		MergeTables: true,
	})
	require.Error(t, err)
}
