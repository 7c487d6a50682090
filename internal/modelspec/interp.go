package modelspec

import (
	"fmt"
	"regexp"
	"strings"
)

// refPattern matches one ${Stanza:key} reference inside a value.
var refPattern = regexp.MustCompile(`\$\{([^}:]+):([^}]+)\}`)

// resolve expands every ${Stanza:key} reference in value, recursively.
// visited carries the "stanza:key" entries already on the expansion path so
// a cycle is detected rather than recursed into.
func (s *Specification) resolve(value string, visited map[string]bool) (string, error) {
	if !strings.Contains(value, "${") {
		return value, nil
	}
	var resolveErr error
	out := refPattern.ReplaceAllStringFunc(value, func(match string) string {
		if resolveErr != nil {
			return match
		}
		parts := refPattern.FindStringSubmatch(match)
		stanza, key := parts[1], parts[2]
		path := stanza + ":" + key
		if visited[path] {
			resolveErr = fmt.Errorf("%w: %s", ErrReferenceCycle, match)
			return match
		}
		st, ok := s.stanzas[stanza]
		if !ok {
			resolveErr = fmt.Errorf("%w: %s", ErrBadReference, match)
			return match
		}
		raw, ok := st.vals[key]
		if !ok {
			resolveErr = fmt.Errorf("%w: %s", ErrBadReference, match)
			return match
		}
		visited[path] = true
		expanded, err := s.resolve(raw, visited)
		delete(visited, path)
		if err != nil {
			resolveErr = err
			return match
		}
		return expanded
	})
	if resolveErr != nil {
		return "", resolveErr
	}
	return out, nil
}
