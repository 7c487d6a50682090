package odegen

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
	"github.com/kincproject/kinc/internal/ratelaw"
)

// Render writes the program as a self-contained Go source listing: header
// comment block, derivative functions, the selected method's Butcher
// tableau, the ODE derivative vector, the initial state vector (entity name
// and description as inline comments), the labels list, the boundary tables,
// and the stepping loop. The listing imports only the standard library, so
// it compiles outside this module.
func (p *Program) Render(w io.Writer) error {
	var b strings.Builder

	p.renderHeader(&b)
	b.WriteString("package main\n\n")
	b.WriteString("import (\n")
	b.WriteString("\t\"fmt\"\n")
	b.WriteString("\t\"math\"\n")
	b.WriteString("\t\"strconv\"\n")
	b.WriteString("\t\"strings\"\n")
	b.WriteString(")\n\n")

	for _, name := range p.Table.Names() {
		e, _ := p.Table.Get(name)
		p.renderDerivative(&b, e)
	}

	p.renderSetup(&b)
	p.renderStepper(&b)
	p.renderMain(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// renderHeader emits the generation header: timestamp plus every
// Identifiers entry of the source specification.
func (p *Program) renderHeader(b *strings.Builder) {
	b.WriteString("// -------------------------------------\n")
	b.WriteString("// ODE integration program generated by kinc\n")
	b.WriteString("//\n")
	fmt.Fprintf(b, "// Date Time: %s\n", time.Now().UTC().Format("2006-01-02 15:04:05"))
	if ids, ok := p.Spec.Stanza(modelspec.StanzaIdentifiers); ok {
		b.WriteString("//\n")
		for _, key := range ids.Keys() {
			value, _ := ids.Raw(key)
			fmt.Fprintf(b, "// %s: %s\n", key, value)
		}
	}
	b.WriteString("// -------------------------------------\n\n")
}

// renderDerivative emits one entity's derivative function: one local term
// per flux, then the (influx) - (outflux) return.
func (p *Program) renderDerivative(b *strings.Builder, e *network.Entity) {
	fmt.Fprintf(b, "// %s computes d(%s)/dt.\n", derivName(e.Name), e.Name)
	fmt.Fprintf(b, "func %s(t float64, y []float64) float64 {\n", derivName(e.Name))

	seen := make(map[string]bool)
	influxTerms := renderTerms(b, e.Influx, seen)
	outfluxTerms := renderTerms(b, e.Outflux, seen)

	fmt.Fprintf(b, "\treturn (%s) - (%s)\n", joinOrZero(influxTerms), joinOrZero(outfluxTerms))
	b.WriteString("}\n\n")
}

// renderTerms emits one `name := expr` line per flux and returns the term
// names. seen disambiguates a reaction id appearing on both sides of the
// same entity.
func renderTerms(b *strings.Builder, m *network.FluxMap, seen map[string]bool) []string {
	terms := make([]string, 0, m.Len())
	for _, id := range m.IDs() {
		eq, _ := m.Get(id)
		term := sanitizeIdent(id)
		for seen[term] {
			term += "_"
		}
		seen[term] = true
		fmt.Fprintf(b, "\t%s := %s\n", term, eq)
		terms = append(terms, term)
	}
	return terms
}

func joinOrZero(terms []string) string {
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// renderSetup emits the inlined integration method, ODE vector, initial
// state, labels, and boundary tables.
func (p *Program) renderSetup(b *strings.Builder) {
	fmt.Fprintf(b, "// Integration method: %s (order %d), inlined as its Butcher tableau.\n",
		p.Method.Name, p.Method.Order)
	b.WriteString("var (\n")
	fmt.Fprintf(b, "\tstageTimes  = []float64{%s}\n", formatFloats(p.Method.C))
	b.WriteString("\tstageCoeffs = [][]float64{\n")
	for _, row := range p.Method.A {
		fmt.Fprintf(b, "\t\t{%s},\n", formatFloats(row))
	}
	b.WriteString("\t}\n")
	fmt.Fprintf(b, "\tweights     = []float64{%s}\n", formatFloats(p.Method.B))
	b.WriteString(")\n\n")

	b.WriteString("const (\n")
	fmt.Fprintf(b, "\ttimestep = %s\n", formatFloat(p.Config.Timestep))
	fmt.Fprintf(b, "\tendtime  = %s\n", formatFloat(p.Config.EndTime))
	b.WriteString(")\n\n")

	names := p.Table.Names()

	b.WriteString("// ODE binds each state slot to its derivative.\n")
	b.WriteString("var ODE = []func(t float64, y []float64) float64{\n")
	for i, name := range names {
		fmt.Fprintf(b, "\t%d: %s,\n", i, derivName(name))
	}
	b.WriteString("}\n\n")

	b.WriteString("// y is the initial state vector.\n")
	b.WriteString("var y = []float64{\n")
	for i, name := range names {
		e, _ := p.Table.Get(name)
		fmt.Fprintf(b, "\t%d: %s, // %s : %s\n", i, formatFloat(e.Initial), name, e.Description)
	}
	b.WriteString("}\n\n")

	b.WriteString("// labels names the output columns.\n")
	b.WriteString("var labels = []string{")
	for i, l := range p.Labels() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%q", l)
	}
	b.WriteString("}\n\n")

	b.WriteString("// bound resets a state value to reset once it crosses threshold.\n")
	b.WriteString("type bound struct {\n")
	b.WriteString("\tthreshold float64\n")
	b.WriteString("\treset     float64\n")
	b.WriteString("}\n\n")

	b.WriteString("var lowerbound = map[int]bound{\n")
	for i := range names {
		fmt.Fprintf(b, "\t%d: {threshold: %s, reset: %s},\n", i,
			formatFloat(p.Config.Lower.Threshold), formatFloat(p.Config.Lower.Reset))
	}
	b.WriteString("}\n\n")

	b.WriteString("var upperbound = map[int]bound{\n")
	for i := range names {
		fmt.Fprintf(b, "\t%d: {threshold: %s, reset: %s},\n", i,
			formatFloat(p.Config.Upper.Threshold), formatFloat(p.Config.Upper.Reset))
	}
	b.WriteString("}\n\n")
}

// renderStepper emits the fixed-step tableau evaluation and the boundary
// clamp, mirroring the in-memory driver.
func (p *Program) renderStepper(b *strings.Builder) {
	b.WriteString("// step advances y by one timestep through the tableau stages and\n")
	b.WriteString("// applies the boundary policy to the result.\n")
	b.WriteString("func step(t float64, y []float64) []float64 {\n")
	b.WriteString("\tk := make([][]float64, len(stageTimes))\n")
	b.WriteString("\tstageY := make([]float64, len(y))\n")
	b.WriteString("\tfor j := range stageTimes {\n")
	b.WriteString("\t\tcopy(stageY, y)\n")
	b.WriteString("\t\tfor l, a := range stageCoeffs[j] {\n")
	b.WriteString("\t\t\tif a == 0 {\n")
	b.WriteString("\t\t\t\tcontinue\n")
	b.WriteString("\t\t\t}\n")
	b.WriteString("\t\t\tfor i := range y {\n")
	b.WriteString("\t\t\t\tstageY[i] += timestep * a * k[l][i]\n")
	b.WriteString("\t\t\t}\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t\tstageT := t + stageTimes[j]*timestep\n")
	b.WriteString("\t\tk[j] = make([]float64, len(y))\n")
	b.WriteString("\t\tfor i, f := range ODE {\n")
	b.WriteString("\t\t\tk[j][i] = f(stageT, stageY)\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t}\n")
	b.WriteString("\tnext := make([]float64, len(y))\n")
	b.WriteString("\tcopy(next, y)\n")
	b.WriteString("\tfor j, w := range weights {\n")
	b.WriteString("\t\tif w == 0 {\n")
	b.WriteString("\t\t\tcontinue\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t\tfor i := range y {\n")
	b.WriteString("\t\t\tnext[i] += timestep * w * k[j][i]\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t}\n")
	b.WriteString("\tclamp(next)\n")
	b.WriteString("\treturn next\n")
	b.WriteString("}\n\n")

	b.WriteString("// clamp hard-resets every state value that crossed its boundary.\n")
	b.WriteString("func clamp(y []float64) {\n")
	b.WriteString("\tfor i, b := range lowerbound {\n")
	b.WriteString("\t\tif y[i] < b.threshold {\n")
	b.WriteString("\t\t\ty[i] = b.reset\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t}\n")
	b.WriteString("\tfor i, b := range upperbound {\n")
	b.WriteString("\t\tif y[i] > b.threshold {\n")
	b.WriteString("\t\t\ty[i] = b.reset\n")
	b.WriteString("\t\t}\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n\n")
}

// renderMain emits the row formatter and the integration loop: the initial
// state row, then one row per step.
func (p *Program) renderMain(b *strings.Builder) {
	b.WriteString("func emit(t float64, state []float64) {\n")
	b.WriteString("\trow := []string{strconv.FormatFloat(t, 'g', -1, 64)}\n")
	b.WriteString("\tfor _, v := range state {\n")
	b.WriteString("\t\trow = append(row, strconv.FormatFloat(v, 'g', -1, 64))\n")
	b.WriteString("\t}\n")
	b.WriteString("\tfmt.Println(strings.Join(row, \",\"))\n")
	b.WriteString("}\n\n")

	b.WriteString("func main() {\n")
	b.WriteString("\tfmt.Println(strings.Join(labels, \",\"))\n")
	b.WriteString("\tstate := make([]float64, len(y))\n")
	b.WriteString("\tcopy(state, y)\n")
	b.WriteString("\temit(0, state)\n")
	b.WriteString("\tsteps := int(math.Ceil(endtime / timestep))\n")
	b.WriteString("\tfor i := 1; i <= steps; i++ {\n")
	b.WriteString("\t\tstate = step(float64(i-1)*timestep, state)\n")
	b.WriteString("\t\temit(float64(i)*timestep, state)\n")
	b.WriteString("\t}\n")
	b.WriteString("}\n")
}

// derivName is the generated derivative function name for an entity.
func derivName(entity string) string {
	return "d_" + sanitizeIdent(entity)
}

// sanitizeIdent maps an entity or reaction name onto a valid identifier:
// every character outside [A-Za-z0-9_] becomes '_', and a leading digit is
// prefixed.
func sanitizeIdent(name string) string {
	var out strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out.WriteRune(r)
		default:
			out.WriteRune('_')
		}
	}
	s := out.String()
	if s == "" || (s[0] >= '0' && s[0] <= '9') {
		s = "v" + s
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatFloats(vs []float64) string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = formatFloat(v)
	}
	return strings.Join(out, ", ")
}

// DerivativeListing returns the textual derivative expressions per entity
// in slot order, `(influx + ...) - (outflux + ...)` over rewritten rate
// laws. Used by inspection commands.
func (p *Program) DerivativeListing() []string {
	out := make([]string, 0, p.Table.Len())
	for _, name := range p.Table.Names() {
		e, _ := p.Table.Get(name)
		out = append(out, fmt.Sprintf("d(%s)/dt = %s", name, ratelaw.DerivativeExpr(e)))
	}
	return out
}
