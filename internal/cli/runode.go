package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kincproject/kinc/internal/app"
	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/odegen"
)

func (c *cli) newRunODECmd() *cobra.Command {
	var (
		flags      odeFlags
		mtype      string
		sampling   int
		resultfile string
	)
	cmd := &cobra.Command{
		Use:   "runode <modelfile>",
		Short: "Compile and simulate a model, writing the trajectory as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := ctxlog.FromContext(ctx)
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			if sampling < 1 {
				sampling = 1
			}

			spec, table, err := app.LoadModel(ctx, args[0], mtype, modelspec.ModeExtended)
			if err != nil {
				return err
			}
			program, err := odegen.Compile(ctx, spec, table, cfg)
			if err != nil {
				return err
			}

			f, err := os.Create(resultfile)
			if err != nil {
				return err
			}
			defer f.Close()
			cw := csv.NewWriter(f)
			if err := cw.Write(program.Labels()); err != nil {
				return err
			}

			logger.Info("runode: simulating", "model", args[0],
				"solver", cfg.Solver, "endtime", cfg.EndTime, "sampling", sampling)

			// The first and last rows always go out; in between only every
			// sampling-th row does.
			var last []string
			written := false
			count := 0
			err = program.Run(ctx, func(t float64, y []float64) error {
				row := formatTrajectoryRow(t, y)
				last = row
				written = count%sampling == 0
				count++
				if written {
					return cw.Write(row)
				}
				return nil
			})
			if err != nil {
				return err
			}
			if !written && last != nil {
				if err := cw.Write(last); err != nil {
					return err
				}
			}
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			fmt.Fprintf(c.app.Out(), "Output simulation result file: %s\n", resultfile)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&mtype, "mtype", app.MTypeSpec, "model file type (ASM|MO)")
	cmd.Flags().IntVar(&sampling, "sampling", 100, "write every Nth trajectory row")
	cmd.Flags().StringVar(&resultfile, "resultfile", "oderesult.csv", "output CSV file")
	return cmd
}

func formatTrajectoryRow(t float64, y []float64) []string {
	row := make([]string, 0, len(y)+1)
	row = append(row, strconv.FormatFloat(t, 'g', -1, 64))
	for _, v := range y {
		row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return row
}
