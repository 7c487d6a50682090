package network

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel is the pseudo-entity standing in for the environment when a
// reaction side is empty: spontaneous production (`-> A`) or loss to an
// unmodeled reservoir (`A ->`).
const Sentinel = "X"

// ErrReactionSyntax indicates a Reactions entry that does not follow the
// `sources -> destinations | rateEq` form.
var ErrReactionSyntax = errors.New("network: malformed reaction")

// Reaction is one transformation parsed from the Reactions stanza.
type Reaction struct {
	ID           string
	Sources      []string
	Destinations []string
	RateEq       string
}

// ParseReaction splits a Reactions stanza value into its movement and rate
// law. The movement splits on `->` into source and destination sides, each
// side on `+` into trimmed entity names; an empty side becomes the Sentinel.
// A value missing the `|` rate-law delimiter or the directional arrow is a
// hard failure.
func ParseReaction(id, text string) (*Reaction, error) {
	movement, rateEq, ok := strings.Cut(text, "|")
	if !ok {
		return nil, fmt.Errorf("%w %q: missing rate-law delimiter '|'", ErrReactionSyntax, id)
	}
	sources, destinations, ok := strings.Cut(strings.TrimSpace(movement), "->")
	if !ok {
		return nil, fmt.Errorf("%w %q: missing directional arrow '->'", ErrReactionSyntax, id)
	}
	return &Reaction{
		ID:           id,
		Sources:      splitSide(sources),
		Destinations: splitSide(destinations),
		RateEq:       strings.TrimSpace(rateEq),
	}, nil
}

// splitSide splits one side of a movement on `+` into trimmed entity names,
// substituting the Sentinel for an empty side.
func splitSide(side string) []string {
	side = strings.TrimSpace(side)
	if side == "" {
		return []string{Sentinel}
	}
	parts := strings.Split(side, "+")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, strings.TrimSpace(p))
	}
	return names
}
