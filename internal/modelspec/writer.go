package modelspec

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Write serializes the specification in its stanza/key declaration order.
// Values are written raw: ${Stanza:key} references survive a round trip
// unexpanded regardless of the specification's mode.
func (s *Specification) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, name := range s.order {
		if i > 0 {
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
		}
		st := s.stanzas[name]
		if _, err := fmt.Fprintf(bw, "[%s]\n", name); err != nil {
			return err
		}
		for _, key := range st.order {
			if _, err := fmt.Fprintf(bw, "%s = %s\n", key, st.vals[key]); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFile serializes the specification to the named file.
func (s *Specification) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write model specification: %w", err)
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
