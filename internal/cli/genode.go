package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kincproject/kinc/internal/app"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/odegen"
)

// odeFlags are the integration parameters shared by genode, runode and lsa.
type odeFlags struct {
	solver     string
	timestep   float64
	endtime    float64
	lowerbound string
	upperbound string
}

func (f *odeFlags) register(cmd *cobra.Command) {
	def := odegen.Default()
	cmd.Flags().StringVar(&f.solver, "solver", def.Solver, "integration method")
	cmd.Flags().Float64Var(&f.timestep, "timestep", def.Timestep, "fixed step interval")
	cmd.Flags().Float64Var(&f.endtime, "endtime", def.EndTime, "simulation end time")
	cmd.Flags().StringVar(&f.lowerbound, "lowerbound", "0;0", "lower boundary as threshold;reset")
	cmd.Flags().StringVar(&f.upperbound, "upperbound", "1e-3;1e-3", "upper boundary as threshold;reset")
}

func (f *odeFlags) config() (odegen.Config, error) {
	lower, err := odegen.ParseBound(f.lowerbound)
	if err != nil {
		return odegen.Config{}, err
	}
	upper, err := odegen.ParseBound(f.upperbound)
	if err != nil {
		return odegen.Config{}, err
	}
	return odegen.Config{
		Solver:   f.solver,
		Timestep: f.timestep,
		EndTime:  f.endtime,
		Lower:    lower,
		Upper:    upper,
	}, nil
}

func (c *cli) newGenODECmd() *cobra.Command {
	var (
		flags   odeFlags
		mtype   string
		odefile string
	)
	cmd := &cobra.Command{
		Use:   "genode <modelfile>",
		Short: "Generate an ODE integration program from a model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			spec, table, err := app.LoadModel(ctx, args[0], mtype, modelspec.ModeExtended)
			if err != nil {
				return err
			}
			program, err := odegen.Compile(ctx, spec, table, cfg)
			if err != nil {
				return err
			}

			f, err := os.Create(odefile)
			if err != nil {
				return err
			}
			if err := program.Render(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(c.app.Out(), "Output ODE program: %s\n", odefile)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&mtype, "mtype", app.MTypeSpec, "model file type (ASM|MO)")
	cmd.Flags().StringVar(&odefile, "odefile", "odeprogram.go", "output program file")
	return cmd
}
