package sensitivity

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/modelspec"
)

// OriginalParam names the unperturbed member of a generated series.
const OriginalParam = "original"

// Perturbation is one member of a sensitivity series: a model file with a
// single Variables entry scaled, or the unmodified original.
type Perturbation struct {
	// Param is the perturbed Variables key, or OriginalParam.
	Param string
	// Path is the written specification file.
	Path string
	// Change describes the value change, `old --> new`, or "None" for the
	// original.
	Change string
}

// GenerateSeries writes one perturbed copy of the model per Variables
// entry into outDir, each with that entry multiplied by multiple, plus the
// unmodified original. File names carry the optional prefix, the model's
// base name and the perturbed parameter, so concurrent series over
// different prefixes never collide. The original is first in the returned
// series; the rest follow Variables declaration order.
func GenerateSeries(ctx context.Context, modelPath, outDir, prefix string, multiple float64) ([]Perturbation, error) {
	logger := ctxlog.FromContext(ctx)

	spec, err := modelspec.Load(modelPath, modelspec.ModeBasic)
	if err != nil {
		return nil, err
	}
	base := strings.TrimSuffix(filepath.Base(modelPath), filepath.Ext(modelPath))

	series := make([]Perturbation, 0, 1)
	originalPath := filepath.Join(outDir, seriesName(prefix, base, OriginalParam))
	if err := spec.WriteFile(originalPath); err != nil {
		return nil, err
	}
	series = append(series, Perturbation{
		Param:  OriginalParam,
		Path:   originalPath,
		Change: "None",
	})

	variables, ok := spec.Stanza(modelspec.StanzaVariables)
	if !ok {
		logger.Warn("sensitivity: model has no Variables stanza, series holds only the original",
			"model", modelPath)
		return series, nil
	}

	for _, param := range variables.Keys() {
		raw, _ := variables.Raw(param)
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("sensitivity: variable %q is not numeric: %w", param, err)
		}
		scaled := strconv.FormatFloat(value*multiple, 'g', -1, 64)

		perturbed := spec.Clone()
		perturbed.EnsureStanza(modelspec.StanzaVariables).Set(param, scaled)
		path := filepath.Join(outDir, seriesName(prefix, base, param))
		if err := perturbed.WriteFile(path); err != nil {
			return nil, err
		}

		change := raw + " --> " + scaled
		logger.Info("sensitivity: parameter perturbed",
			"param", param, "change", change, "file", path)
		series = append(series, Perturbation{Param: param, Path: path, Change: change})
	}
	return series, nil
}

// seriesName builds `[prefix.]base.param.modelspec`.
func seriesName(prefix, base, param string) string {
	parts := []string{base, param, "modelspec"}
	if prefix != "" {
		parts = append([]string{prefix}, parts...)
	}
	return strings.Join(parts, ".")
}
