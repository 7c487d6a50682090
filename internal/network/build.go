package network

import (
	"context"
	"fmt"
	"strconv"

	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/modelspec"
)

// Build converts a specification's Objects/Initials/Reactions stanzas into
// an entity table. Entities are created in Objects declaration order with
// their initial value from Initials (0 when absent). Every reaction's
// sources gain an outflux entry and its destinations an influx entry, both
// keyed by reaction id and holding the reaction's rate law.
//
// A reaction side naming an undeclared entity is a soft failure: the
// contribution is dropped with a warning. Malformed reaction text or a
// non-numeric initial value aborts the build.
func Build(ctx context.Context, spec *modelspec.Specification) (*EntityTable, error) {
	logger := ctxlog.FromContext(ctx)

	objects, ok := spec.Stanza(modelspec.StanzaObjects)
	if !ok {
		return nil, fmt.Errorf("%w: specification has no [%s] stanza",
			modelspec.ErrStanzaNotFound, modelspec.StanzaObjects)
	}

	table := NewEntityTable()
	for _, name := range objects.Keys() {
		description, err := spec.Get(modelspec.StanzaObjects, name)
		if err != nil {
			return nil, err
		}
		e := NewEntity(name, description)
		if initials, ok := spec.Stanza(modelspec.StanzaInitials); ok && initials.Has(name) {
			raw, err := spec.Get(modelspec.StanzaInitials, name)
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("initial value for %s is not numeric: %q", name, raw)
			}
			e.Initial = v
		}
		table.Add(e)
	}
	logger.Debug("network: entity table created", "entities", table.Len())

	reactions, ok := spec.Stanza(modelspec.StanzaReactions)
	if !ok {
		logger.Warn("network: specification has no [Reactions] stanza")
		return table, nil
	}
	for _, id := range reactions.Keys() {
		text, err := spec.Get(modelspec.StanzaReactions, id)
		if err != nil {
			return nil, err
		}
		rxn, err := ParseReaction(id, text)
		if err != nil {
			return nil, err
		}
		loadReaction(ctx, table, rxn)
	}
	logger.Debug("network: reactions loaded", "reactions", reactions.Len())
	return table, nil
}

// loadReaction records the reaction's rate law into the flux maps of every
// resolvable source and destination entity.
func loadReaction(ctx context.Context, table *EntityTable, rxn *Reaction) {
	logger := ctxlog.FromContext(ctx)
	for _, s := range rxn.Sources {
		e, ok := table.Get(s)
		if !ok {
			if s == Sentinel {
				logger.Debug("network: source is the environment sentinel", "reaction", rxn.ID)
			} else {
				logger.Warn("network: source entity not found in Objects, contribution dropped",
					"reaction", rxn.ID, "entity", s)
			}
			continue
		}
		e.Outflux.Set(rxn.ID, rxn.RateEq)
	}
	for _, d := range rxn.Destinations {
		e, ok := table.Get(d)
		if !ok {
			if d == Sentinel {
				logger.Debug("network: destination is the environment sentinel", "reaction", rxn.ID)
			} else {
				logger.Warn("network: destination entity not found in Objects, contribution dropped",
					"reaction", rxn.ID, "entity", d)
			}
			continue
		}
		e.Influx.Set(rxn.ID, rxn.RateEq)
	}
}
