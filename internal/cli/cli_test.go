package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliModel = `[Identifiers]
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

func writeCLIModel(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tiny.modelspec")
	require.NoError(t, os.WriteFile(path, []byte(cliModel), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := New(&out, &logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_PrintSpec(t *testing.T) {
	model := writeCLIModel(t)

	out, err := execute(t, "printspec", "--readertype=extended", model)
	require.NoError(t, err)
	assert.Contains(t, out, "Identifiers/name = tiny")
	assert.Contains(t, out, "Reactions/r1 = A -> B | 0.1 * A")

	out, err = execute(t, "printspec", "--readertype=basic", model)
	require.NoError(t, err)
	assert.Contains(t, out, "Reactions/r1 = A -> B | ${Variables:k1} * A")

	_, err = execute(t, "printspec", "--readertype=fancy", model)
	require.Error(t, err)
}

func TestCLI_GenODEWritesAProgramListing(t *testing.T) {
	model := writeCLIModel(t)
	odefile := filepath.Join(t.TempDir(), "tiny.go")

	_, err := execute(t, "genode", model, "--solver=RK4", "--odefile="+odefile)
	require.NoError(t, err)

	src, err := os.ReadFile(odefile)
	require.NoError(t, err)
	assert.Contains(t, string(src), "func d_A(t float64, y []float64) float64 {")
	assert.Contains(t, string(src), "// Integration method: RK4 (order 4), inlined as its Butcher tableau.")
	assert.NotContains(t, string(src), "github.com/")
}

func TestCLI_RunODEWritesTrajectoryCSV(t *testing.T) {
	model := writeCLIModel(t)
	resultfile := filepath.Join(t.TempDir(), "result.csv")

	_, err := execute(t, "runode", model,
		"--timestep=1", "--endtime=10", "--sampling=5",
		"--upperbound=1e9;1e9", "--resultfile="+resultfile)
	require.NoError(t, err)

	data, err := os.ReadFile(resultfile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header, rows 0, 5 and 10.
	require.Len(t, lines, 4)
	assert.Equal(t, "time,A,B", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,1,0"))
	assert.True(t, strings.HasPrefix(lines[3], "10,"))
}

func TestCLI_MergeWritesRenumberedSpec(t *testing.T) {
	m1 := writeCLIModel(t)
	m2 := writeCLIModel(t)
	outfile := filepath.Join(t.TempDir(), "merged.modelspec")

	_, err := execute(t, "merge", m1, m2, "--prefix=exp", "--outputfile="+outfile)
	require.NoError(t, err)

	data, err := os.ReadFile(outfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exp1 = ")
	assert.Contains(t, string(data), "exp2 = ")
	assert.NotContains(t, string(data), "r1 = ")
}

func TestCLI_NetworkWritesSIFEdges(t *testing.T) {
	model := writeCLIModel(t)
	outfile := filepath.Join(t.TempDir(), "net.sif")

	_, err := execute(t, "network", model, "--outputfile="+outfile)
	require.NoError(t, err)

	data, err := os.ReadFile(outfile)
	require.NoError(t, err)
	assert.Equal(t, "A cr r0s\nr0p rc B\nr0s rxn r0p\n", string(data))
}

func TestCLI_ReadFluxPrintsProductionUsageTable(t *testing.T) {
	model := writeCLIModel(t)

	out, err := execute(t, "readflux", model)
	require.NoError(t, err)
	assert.Contains(t, out, "Name|Productions|Usages")
	assert.Contains(t, out, "A|NIL|r1")
	assert.Contains(t, out, "B|r1|NIL")
}

func TestCLI_GenMOThenReadModel(t *testing.T) {
	model := writeCLIModel(t)
	mofile := filepath.Join(t.TempDir(), "tiny.mo")

	_, err := execute(t, "genmo", model, "--prefix=exp", "--outputfile="+mofile)
	require.NoError(t, err)

	out, err := execute(t, "readmodel", "--mtype=MO", mofile)
	require.NoError(t, err)
	assert.Contains(t, out, "Name: A")
	assert.Contains(t, out, "Initial: 1")
	assert.Contains(t, out, "exp1: 0.1 * A")
}

func TestCLI_SenGenListsGeneratedModels(t *testing.T) {
	model := writeCLIModel(t)
	outdir := t.TempDir()

	out, err := execute(t, "sengen", model, "--multiple=10", "--outdir="+outdir)
	require.NoError(t, err)
	assert.Contains(t, out, "original (None)")
	assert.Contains(t, out, "k1 (0.1 --> 1)")

	entries, err := os.ReadDir(outdir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestCLI_LSAWritesSensitivityCSV(t *testing.T) {
	model := writeCLIModel(t)
	resultfile := filepath.Join(t.TempDir(), "sa.csv")

	_, err := execute(t, "lsa", model,
		"--multiple=2", "--timestep=1", "--endtime=10",
		"--upperbound=1e9;1e9", "--outdir="+t.TempDir(),
		"--resultfile="+resultfile)
	require.NoError(t, err)

	data, err := os.ReadFile(resultfile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Parameter,Change,time,A,B", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "original,None,10,"))
	assert.True(t, strings.HasPrefix(lines[2], "k1,0.1 --> 0.2,10,"))
}

func TestCLI_GSM2SpecConvertsAnExport(t *testing.T) {
	export := `{
  "reactions": [
    {"index": 0, "id": "PGI", "reactants": ["g6p_c"], "products": ["f6p_c"], "name": "isomerase"}
  ],
  "medium": [{"compound": "g6p_c", "value": 0.00025}]
}`
	exportfile := filepath.Join(t.TempDir(), "core.json")
	require.NoError(t, os.WriteFile(exportfile, []byte(export), 0o644))
	outfile := filepath.Join(t.TempDir(), "core.modelspec")

	_, err := execute(t, "gsm2spec", exportfile, "--name=core", "--author=kw",
		"--outputfile="+outfile)
	require.NoError(t, err)

	data, err := os.ReadFile(outfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Reactions]")
	assert.Contains(t, string(data), "m_g6p_c -> m_f6p_c | (${Variables:m_PGI_kcat}")
	assert.Contains(t, string(data), "m_g6p_c = 0.00025")
}
