package merge

import (
	"context"
	"strconv"

	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
)

// renumber deep-copies every specification and entity table, assigning each
// reaction a globally unique `prefix + counter` id. The counter starts at 1
// and runs across all models without resetting, so no two surviving
// reactions can share an id regardless of how the original authors numbered
// them. Flux-map keys are rekeyed through the same assignment to stay
// consistent with the renamed Reactions stanza.
func renumber(ctx context.Context, specs []*modelspec.Specification, tables []*network.EntityTable, prefix string) ([]*modelspec.Specification, []*network.EntityTable) {
	logger := ctxlog.FromContext(ctx)

	counter := 1
	outSpecs := make([]*modelspec.Specification, len(specs))
	outTables := make([]*network.EntityTable, len(specs))
	for i, spec := range specs {
		s := spec.Clone()
		assignment := make(map[string]string)
		if reactions, ok := s.Stanza(modelspec.StanzaReactions); ok {
			ordered := reactions.Keys()
			for _, id := range ordered {
				assignment[id] = prefix + strconv.Itoa(counter)
				counter++
			}
			// Rebuild the stanza rather than renaming key by key: a fresh id
			// may collide with a not-yet-renamed original one.
			values := make(map[string]string, len(ordered))
			for _, id := range ordered {
				values[id], _ = reactions.Raw(id)
				reactions.Delete(id)
			}
			for _, id := range ordered {
				reactions.Set(assignment[id], values[id])
			}
			logger.Debug("merge: reactions renumbered",
				"model", i+1, "reactions", len(assignment))
		}
		outSpecs[i] = s

		if i < len(tables) && tables[i] != nil {
			outTables[i] = renumberTable(ctx, i+1, tables[i], assignment)
		}
	}
	return outSpecs, outTables
}

// renumberTable rekeys a copy of the entity table's flux maps through the
// assignment. A flux keyed by a reaction id absent from the owning
// specification's Reactions stanza cannot be renumbered; it is dropped with
// a warning, matching the soft-failure policy of graph building.
func renumberTable(ctx context.Context, model int, table *network.EntityTable, assignment map[string]string) *network.EntityTable {
	logger := ctxlog.FromContext(ctx)
	out := table.Clone()
	for _, name := range out.Names() {
		e, _ := out.Get(name)
		for _, flux := range []*network.FluxMap{e.Influx, e.Outflux} {
			ordered := flux.IDs()
			values := make(map[string]string, len(ordered))
			for _, id := range ordered {
				values[id], _ = flux.Get(id)
				flux.Delete(id)
			}
			for _, id := range ordered {
				newID, ok := assignment[id]
				if !ok {
					logger.Warn("merge: flux references unknown reaction, dropped",
						"model", model, "entity", name, "reaction", id)
					continue
				}
				flux.Set(newID, values[id])
			}
		}
	}
	return out
}
