package ratelaw

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/network"
)

// ErrExprSyntax indicates a rate-law expression the lexer cannot tokenize.
var ErrExprSyntax = errors.New("ratelaw: malformed expression")

// Substitute rewrites expr, replacing each whole-token occurrence of an
// indexed entity name with its state-vector accessor `y[slot]`. A name that
// is not a single identifier (R1.2, 3pg) lexes as several adjacent tokens,
// so matching runs over maximal gap-free token runs, longest name first.
// All other text, including spacing between tokens, is preserved byte for
// byte.
func Substitute(expr string, index map[string]int) (string, error) {
	src := []byte(expr)
	tokens, diags := hclsyntax.LexExpression(src, "rate-law", hcl.InitialPos)
	if diags.HasErrors() {
		return "", fmt.Errorf("%w %q: %s", ErrExprSyntax, expr, diags.Error())
	}

	var out strings.Builder
	last := 0
	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if tok.Type == hclsyntax.TokenEOF {
			break
		}
		start, end := tok.Range.Start.Byte, tok.Range.End.Byte

		if slot, next, matchEnd, ok := matchName(src, tokens, i, index); ok {
			out.Write(src[last:start])
			out.WriteString("y[")
			out.WriteString(strconv.Itoa(slot))
			out.WriteString("]")
			last = matchEnd
			i = next
			continue
		}

		out.Write(src[last:start])
		out.Write(src[start:end])
		last = end
		i++
	}
	out.Write(src[last:])
	return out.String(), nil
}

// matchName finds the longest run of byte-adjacent tokens starting at i
// whose source text is an indexed entity name. It returns the slot, the
// index of the first token past the match, and the match's end byte.
func matchName(src []byte, tokens hclsyntax.Tokens, i int, index map[string]int) (slot, next, end int, ok bool) {
	start := tokens[i].Range.Start.Byte
	edge := start
	for j := i; j < len(tokens) && tokens[j].Type != hclsyntax.TokenEOF; j++ {
		if tokens[j].Range.Start.Byte != edge {
			break
		}
		edge = tokens[j].Range.End.Byte
		if s, found := index[string(src[start:edge])]; found {
			slot, next, end, ok = s, j+1, edge, true
		}
	}
	return slot, next, end, ok
}

// RewriteTable returns a copy of the entity table with every influx and
// outflux expression rewritten against the index. The input table is not
// modified.
func RewriteTable(ctx context.Context, table *network.EntityTable, index map[string]int) (*network.EntityTable, error) {
	logger := ctxlog.FromContext(ctx)
	out := table.Clone()
	for _, name := range out.Names() {
		e, _ := out.Get(name)
		for _, flux := range []*network.FluxMap{e.Influx, e.Outflux} {
			for _, id := range flux.IDs() {
				eq, _ := flux.Get(id)
				rewritten, err := Substitute(eq, index)
				if err != nil {
					return nil, fmt.Errorf("reaction %s of entity %s: %w", id, name, err)
				}
				flux.Set(id, rewritten)
			}
		}
	}
	logger.Debug("ratelaw: expressions rewritten to state-vector form", "entities", out.Len())
	return out, nil
}
