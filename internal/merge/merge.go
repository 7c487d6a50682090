package merge

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
)

// ErrNoInput indicates a merge was requested over an empty model list.
var ErrNoInput = errors.New("merge: no specifications given")

// Options control a merge.
type Options struct {
	// Prefix seeds the renumbered reaction ids. It must not collide with an
	// id prefix already used by any input model.
	Prefix string
	// MergeSpecs selects whether the stanza union is produced; when false
	// the returned specification is nil.
	MergeSpecs bool
	// MergeTables selects whether the entity-table union is produced; when
	// false the returned table is nil.
	MergeTables bool
}

// Merge renumbers and combines the given specifications and entity tables.
// specs and tables correspond by index; tables entries may be nil when
// Options.MergeTables is false. Inputs are never mutated.
func Merge(ctx context.Context, specs []*modelspec.Specification, tables []*network.EntityTable, opts Options) (*modelspec.Specification, *network.EntityTable, error) {
	logger := ctxlog.FromContext(ctx)
	if len(specs) == 0 {
		return nil, nil, ErrNoInput
	}
	if opts.MergeTables {
		if len(tables) != len(specs) {
			return nil, nil, fmt.Errorf("merge: %d specifications but %d entity tables", len(specs), len(tables))
		}
		for i, t := range tables {
			if t == nil {
				return nil, nil, fmt.Errorf("merge: entity table %d is nil", i+1)
			}
		}
	}

	renSpecs, renTables := renumber(ctx, specs, tables, opts.Prefix)

	var mergedSpec *modelspec.Specification
	if opts.MergeSpecs {
		mergedSpec = unionSpecs(ctx, renSpecs)
	}
	var mergedTable *network.EntityTable
	if opts.MergeTables {
		mergedTable = unionTables(ctx, renTables)
	}

	logger.Info("merge: complete", "models", len(specs),
		"specs_merged", opts.MergeSpecs, "tables_merged", opts.MergeTables)
	return mergedSpec, mergedTable, nil
}

// unionSpecs folds the renumbered specifications into one. The first model
// is the base; later models win on key collision in every stanza except
// Identifiers, whose keys are suffixed with the source model's ordinal so
// provenance survives the union.
func unionSpecs(ctx context.Context, specs []*modelspec.Specification) *modelspec.Specification {
	logger := ctxlog.FromContext(ctx)
	merged := specs[0]
	for n, s := range specs[1:] {
		ordinal := strconv.Itoa(n + 2)
		for _, name := range s.StanzaNames() {
			src, _ := s.Stanza(name)
			dst := merged.EnsureStanza(name)
			for _, key := range src.Keys() {
				value, _ := src.Raw(key)
				if name == modelspec.StanzaIdentifiers {
					dst.Set(key+"_"+ordinal, value)
				} else {
					dst.Set(key, value)
				}
			}
		}
	}
	for _, name := range merged.StanzaNames() {
		st, _ := merged.Stanza(name)
		logger.Debug("merge: stanza union", "stanza", name, "keys", st.Len())
	}
	return merged
}

// unionTables folds the renumbered entity tables into one. An entity name
// not yet present is inserted wholesale; an existing entity merges flux
// maps, skipping any incoming expression textually identical to one already
// recorded for that entity and direction.
func unionTables(ctx context.Context, tables []*network.EntityTable) *network.EntityTable {
	logger := ctxlog.FromContext(ctx)
	merged := tables[0]
	for _, t := range tables[1:] {
		for _, name := range t.Names() {
			incoming, _ := t.Get(name)
			current, ok := merged.Get(name)
			if !ok {
				merged.Add(incoming)
				logger.Debug("merge: entity inserted", "entity", name)
				continue
			}
			mergeFluxes(ctx, name, "influx", current.Influx, incoming.Influx)
			mergeFluxes(ctx, name, "outflux", current.Outflux, incoming.Outflux)
		}
	}
	logger.Debug("merge: entity table union", "entities", merged.Len())
	return merged
}

// mergeFluxes adds every incoming flux whose expression is not already
// present, suppressing duplicate contributions shared by two sub-models.
func mergeFluxes(ctx context.Context, entity, direction string, current, incoming *network.FluxMap) {
	logger := ctxlog.FromContext(ctx)
	for _, id := range incoming.IDs() {
		eq, _ := incoming.Get(id)
		if current.ContainsExpr(eq) {
			logger.Debug("merge: duplicate flux suppressed",
				"entity", entity, "direction", direction, "reaction", id)
			continue
		}
		current.Set(id, eq)
	}
}
