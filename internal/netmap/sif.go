package netmap

import (
	"context"
	"fmt"

	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
)

// FormatSIF is the Simple Interaction Format, one whitespace-separated
// `source relation target` triple per line.
const FormatSIF = "SIF"

// Project renders the reactions of the given specifications as an edge
// list in the requested format. Reactions are numbered by position across
// the whole specification list, so merging inputs beforehand is not
// required for unique pseudo-node names.
func Project(ctx context.Context, specs []*modelspec.Specification, format string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	if format != FormatSIF {
		return nil, fmt.Errorf("netmap: unsupported output format %q", format)
	}

	reactions, err := extract(specs)
	if err != nil {
		return nil, err
	}
	lines := generateSIF(reactions)
	logger.Debug("netmap: projection complete",
		"models", len(specs), "reactions", len(reactions), "edges", len(lines))
	return lines, nil
}

// extract parses every Reactions entry across the specification list in
// stanza order. Only the movement side matters here; rate laws are ignored.
func extract(specs []*modelspec.Specification) ([]*network.Reaction, error) {
	var out []*network.Reaction
	for _, spec := range specs {
		st, ok := spec.Stanza(modelspec.StanzaReactions)
		if !ok {
			continue
		}
		for _, id := range st.Keys() {
			value, _ := spec.Get(modelspec.StanzaReactions, id)
			rxn, err := network.ParseReaction(id, value)
			if err != nil {
				return nil, err
			}
			out = append(out, rxn)
		}
	}
	return out, nil
}

// generateSIF emits the three edge kinds per reaction: every source feeds
// the substrate pseudo-node, the product pseudo-node feeds every
// destination, and one identity edge ties the pair together.
func generateSIF(reactions []*network.Reaction) []string {
	var lines []string
	for i, rxn := range reactions {
		substrate := fmt.Sprintf("r%ds", i)
		product := fmt.Sprintf("r%dp", i)
		for _, s := range rxn.Sources {
			lines = append(lines, fmt.Sprintf("%s cr %s", s, substrate))
		}
		for _, d := range rxn.Destinations {
			lines = append(lines, fmt.Sprintf("%s rc %s", product, d))
		}
		lines = append(lines, fmt.Sprintf("%s rxn %s", substrate, product))
	}
	return lines
}
