package sensitivity

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
	"github.com/kincproject/kinc/internal/odegen"
)

// Output formats for analysis results.
const (
	// FormatReduced records only the final trajectory row per parameter.
	FormatReduced = "reduced"
	// FormatFull records every Sampling-th trajectory row per parameter.
	FormatFull = "full"
)

// Options parameterize a local sensitivity analysis.
type Options struct {
	// Multiple scales each Variables entry in turn.
	Multiple float64
	// Prefix tags the generated series files.
	Prefix string
	// OutDir receives the generated perturbed model files.
	OutDir string
	// Config drives compilation and simulation of every series member.
	Config odegen.Config
	// Format is FormatReduced or FormatFull.
	Format string
	// Sampling keeps every Nth row in full format; ignored when reduced.
	Sampling int
	// Cleanup removes the generated model files after analysis.
	Cleanup bool
}

// paramResult is one perturbation's simulation output.
type paramResult struct {
	labels []string
	rows   [][]string
}

// Analyze runs a one-factor-at-a-time sensitivity analysis: generate the
// perturbation series, simulate every member, and write CSV records
// `Parameter,Change,<labels...>` to w. Members are simulated concurrently;
// output order follows the series order regardless of completion order.
func Analyze(ctx context.Context, modelPath string, opts Options, w io.Writer) error {
	logger := ctxlog.FromContext(ctx)
	if opts.Format != FormatReduced && opts.Format != FormatFull {
		return fmt.Errorf("sensitivity: unknown output format %q", opts.Format)
	}
	if opts.Sampling < 1 {
		opts.Sampling = 1
	}

	series, err := GenerateSeries(ctx, modelPath, opts.OutDir, opts.Prefix, opts.Multiple)
	if err != nil {
		return err
	}
	if opts.Cleanup {
		defer func() {
			for _, p := range series {
				if err := os.Remove(p.Path); err != nil {
					logger.Warn("sensitivity: cleanup failed", "file", p.Path, "error", err)
				}
			}
		}()
	}

	results := make([]*paramResult, len(series))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range series {
		i, p := i, p
		g.Go(func() error {
			logger.Info("sensitivity: simulating",
				"param", p.Param, "model", p.Path, "progress", fmt.Sprintf("%d/%d", i+1, len(series)))
			res, err := simulate(gctx, p.Path, opts)
			if err != nil {
				return fmt.Errorf("sensitivity: parameter %q: %w", p.Param, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := append([]string{"Parameter", "Change"}, results[0].labels...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, p := range series {
		for _, row := range results[i].rows {
			if err := cw.Write(append([]string{p.Param, p.Change}, row...)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// simulate compiles one series member and runs it, keeping the rows the
// output format asks for.
func simulate(ctx context.Context, path string, opts Options) (*paramResult, error) {
	spec, err := modelspec.Load(path, modelspec.ModeExtended)
	if err != nil {
		return nil, err
	}
	table, err := network.Build(ctx, spec)
	if err != nil {
		return nil, err
	}
	program, err := odegen.Compile(ctx, spec, table, opts.Config)
	if err != nil {
		return nil, err
	}

	res := &paramResult{labels: program.Labels()}
	count := 0
	err = program.Run(ctx, func(t float64, y []float64) error {
		keep := opts.Format == FormatFull && count%opts.Sampling == 0
		count++
		if opts.Format == FormatReduced {
			// Only the last row survives; overwrite in place.
			if len(res.rows) == 0 {
				res.rows = append(res.rows, nil)
			}
			res.rows[0] = formatRow(t, y)
			return nil
		}
		if keep {
			res.rows = append(res.rows, formatRow(t, y))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func formatRow(t float64, y []float64) []string {
	row := make([]string, 0, len(y)+1)
	row = append(row, strconv.FormatFloat(t, 'g', -1, 64))
	for _, v := range y {
		row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return row
}
