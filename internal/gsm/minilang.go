package gsm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCondition indicates a malformed mutation or medium-change string.
var ErrCondition = errors.New("gsm: malformed condition")

// Mutation overrides the flux bounds of one reaction. Upper = Lower = 0
// represents a knockout.
type Mutation struct {
	Upper float64
	Lower float64
}

// ParseMutations parses a mutation string of the form
// `id,upper,lower;id,upper,lower;...` into a reaction-id keyed map.
// Entries are semicolon-delimited; any entry not carrying exactly three
// comma-separated fields with numeric bounds is a hard failure.
func ParseMutations(s string) (map[string]Mutation, error) {
	out := make(map[string]Mutation)
	for _, entry := range splitEntries(s) {
		fields := strings.Split(entry, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: mutation %q wants id,upper,lower", ErrCondition, entry)
		}
		id := strings.TrimSpace(fields[0])
		upper, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: mutation %q: upper bound: %v", ErrCondition, entry, err)
		}
		lower, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: mutation %q: lower bound: %v", ErrCondition, entry, err)
		}
		out[id] = Mutation{Upper: upper, Lower: lower}
	}
	return out, nil
}

// ParseMediumChanges parses a medium-change string of the form
// `id,value;id,value;...` into a compound-id keyed map.
func ParseMediumChanges(s string) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, entry := range splitEntries(s) {
		fields := strings.Split(entry, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: medium change %q wants id,value", ErrCondition, entry)
		}
		id := strings.TrimSpace(fields[0])
		value, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: medium change %q: value: %v", ErrCondition, entry, err)
		}
		out[id] = value
	}
	return out, nil
}

// splitEntries splits on semicolons, dropping blanks so trailing
// delimiters are harmless.
func splitEntries(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ";") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
