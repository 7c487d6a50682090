package gsm

import (
	"encoding/json"
	"fmt"
	"os"
)

// Export is the on-disk interchange form of a genome-scale model: the
// reaction list and growth medium as exported by an external flux-analysis
// tool.
type Export struct {
	Reactions []Reaction    `json:"reactions"`
	Medium    []MediumEntry `json:"medium"`
}

// LoadExport reads a JSON genome-scale model export.
func LoadExport(path string) (*Export, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gsm: read export: %w", err)
	}
	var ex Export
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("gsm: decode export %s: %w", path, err)
	}
	return &ex, nil
}
