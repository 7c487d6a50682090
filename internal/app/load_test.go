package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kincproject/kinc/internal/modelspec"
)

const twoEntityModel = `[Identifiers]
name = tiny

[Objects]
A = substrate
B = product

[Initials]
A = 1.0
B = 0.0

[Variables]
k1 = 0.1

[Reactions]
r1 = A -> B | ${Variables:k1} * A
`

func writeModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.modelspec")
	require.NoError(t, os.WriteFile(path, []byte(twoEntityModel), 0o644))
	return path
}

func TestLoadModel_SpecExtendedBuildsTheTable(t *testing.T) {
	spec, table, err := LoadModel(context.Background(), writeModel(t), MTypeSpec, modelspec.ModeExtended)
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, modelspec.ModeExtended, spec.Mode())
	assert.Equal(t, []string{"A", "B"}, table.Names())
	a, _ := table.Get("A")
	eq, _ := a.Outflux.Get("r1")
	assert.Equal(t, "0.1 * A", eq)
}

func TestLoadModel_SpecBasicSkipsTheTable(t *testing.T) {
	spec, table, err := LoadModel(context.Background(), writeModel(t), MTypeSpec, modelspec.ModeBasic)
	require.NoError(t, err)
	assert.Nil(t, table)

	raw, err := spec.Get(modelspec.StanzaReactions, "r1")
	require.NoError(t, err)
	assert.Contains(t, raw, "${Variables:k1}")
}

func TestLoadModel_UnknownTypeFails(t *testing.T) {
	_, _, err := LoadModel(context.Background(), writeModel(t), "SBML", modelspec.ModeExtended)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown model type")
}

func TestSnapshot_RoundTripsThroughGob(t *testing.T) {
	ctx := context.Background()
	spec, table, err := LoadModel(ctx, writeModel(t), MTypeSpec, modelspec.ModeExtended)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tiny.mo")
	require.NoError(t, WriteSnapshot(path, &Snapshot{Spec: spec, Table: table}))

	loadedSpec, loadedTable, err := LoadModel(ctx, path, MTypeSnapshot, modelspec.ModeExtended)
	require.NoError(t, err)

	assert.Equal(t, spec.StanzaNames(), loadedSpec.StanzaNames())
	v, _ := loadedSpec.Raw(modelspec.StanzaReactions, "r1")
	assert.Equal(t, "A -> B | ${Variables:k1} * A", v)

	require.Equal(t, table.Names(), loadedTable.Names())
	a, _ := loadedTable.Get("A")
	assert.Equal(t, 1.0, a.Initial)
	eq, _ := a.Outflux.Get("r1")
	assert.Equal(t, "0.1 * A", eq)
}

func TestReadSnapshot_MissingFileFails(t *testing.T) {
	_, err := ReadSnapshot(filepath.Join(t.TempDir(), "absent.mo"))
	require.Error(t, err)
}
