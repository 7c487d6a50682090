package modelspec

import (
	"fmt"
	"os"

	"gopkg.in/ini.v1"
)

// loadOptions configure the underlying INI reader to accept the model
// specification dialect: both `=` and `:` as key/value delimiters, `#` and
// `;` comment prefixes (the reader's defaults), and no value quoting rules
// beyond the reader's own.
var loadOptions = ini.LoadOptions{
	KeyValueDelimiters: "=:",
}

// Load reads and parses the model specification file at path. A file that
// cannot be opened is a hard failure, as is any line inside a stanza that
// cannot be split into a key/value pair.
func Load(path string, mode Mode) (*Specification, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open model specification: %w", err)
	}
	spec, err := Parse(src, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Parse parses raw specification text into a Specification resolving values
// in the given mode.
func Parse(src []byte, mode Mode) (*Specification, error) {
	f, err := ini.LoadSources(loadOptions, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	spec := New(mode)
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection && len(sec.Keys()) == 0 {
			continue
		}
		st := spec.EnsureStanza(sec.Name())
		for _, key := range sec.Keys() {
			st.Set(key.Name(), key.Value())
		}
	}
	return spec, nil
}
