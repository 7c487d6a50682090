package app

import (
	"context"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
)

// Supported model file formats.
const (
	// MTypeSpec is a plain-text model specification file.
	MTypeSpec = "ASM"
	// MTypeSnapshot is a gob-encoded snapshot of a processed model.
	MTypeSnapshot = "MO"
)

// Snapshot is the persisted form of a processed model: the specification
// together with its built entity table.
type Snapshot struct {
	Spec  *modelspec.Specification
	Table *network.EntityTable
}

// LoadModel reads a model file of the given format and returns its
// specification and entity table. For text specifications the table is
// built on the spot; in basic mode values stay uninterpolated and no table
// is built, matching what inspection commands need.
func LoadModel(ctx context.Context, path, mtype string, mode modelspec.Mode) (*modelspec.Specification, *network.EntityTable, error) {
	switch mtype {
	case MTypeSpec:
		spec, err := modelspec.Load(path, mode)
		if err != nil {
			return nil, nil, err
		}
		if mode == modelspec.ModeBasic {
			return spec, nil, nil
		}
		table, err := network.Build(ctx, spec)
		if err != nil {
			return nil, nil, err
		}
		return spec, table, nil
	case MTypeSnapshot:
		snap, err := ReadSnapshot(path)
		if err != nil {
			return nil, nil, err
		}
		return snap.Spec, snap.Table, nil
	default:
		return nil, nil, fmt.Errorf("app: unknown model type %q (want %s or %s)", mtype, MTypeSpec, MTypeSnapshot)
	}
}

// WriteSnapshot gob-encodes a processed model to path.
func WriteSnapshot(path string, snap *Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("app: write snapshot: %w", err)
	}
	if err := gob.NewEncoder(f).Encode(snap); err != nil {
		f.Close()
		return fmt.Errorf("app: encode snapshot: %w", err)
	}
	return f.Close()
}

// ReadSnapshot decodes a model snapshot from path.
func ReadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("app: read snapshot: %w", err)
	}
	defer f.Close()
	var snap Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("app: decode snapshot: %w", err)
	}
	return &snap, nil
}
