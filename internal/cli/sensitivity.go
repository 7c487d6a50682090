package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kincproject/kinc/internal/sensitivity"
)

func (c *cli) newSenGenCmd() *cobra.Command {
	var (
		prefix   string
		multiple float64
		outdir   string
	)
	cmd := &cobra.Command{
		Use:   "sengen <modelfile>",
		Short: "Generate a perturbed model series for sensitivity analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(outdir, 0o755); err != nil {
				return err
			}
			series, err := sensitivity.GenerateSeries(cmd.Context(), args[0], outdir, prefix, multiple)
			if err != nil {
				return err
			}
			out := c.app.Out()
			for _, p := range series {
				fmt.Fprintf(out, "%s (%s): %s\n", p.Param, p.Change, p.Path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "tag for the generated series files")
	cmd.Flags().Float64Var(&multiple, "multiple", 100, "factor applied to each Variables entry")
	cmd.Flags().StringVar(&outdir, "outdir", "models/temp", "directory for generated model files")
	return cmd
}

func (c *cli) newLSACmd() *cobra.Command {
	var (
		flags      odeFlags
		prefix     string
		multiple   float64
		outdir     string
		outfmt     string
		sampling   int
		cleanup    bool
		resultfile string
	)
	cmd := &cobra.Command{
		Use:   "lsa <modelfile>",
		Short: "Run one-factor-at-a-time local sensitivity analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outdir, 0o755); err != nil {
				return err
			}
			f, err := os.Create(resultfile)
			if err != nil {
				return err
			}
			defer f.Close()

			opts := sensitivity.Options{
				Multiple: multiple,
				Prefix:   prefix,
				OutDir:   outdir,
				Config:   cfg,
				Format:   outfmt,
				Sampling: sampling,
				Cleanup:  cleanup,
			}
			if err := sensitivity.Analyze(cmd.Context(), args[0], opts, f); err != nil {
				return err
			}
			fmt.Fprintf(c.app.Out(), "Output sensitivity result file: %s\n", resultfile)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&prefix, "prefix", "", "tag for the generated series files")
	cmd.Flags().Float64Var(&multiple, "multiple", 100, "factor applied to each Variables entry")
	cmd.Flags().StringVar(&outdir, "outdir", "models/temp", "directory for generated model files")
	cmd.Flags().StringVar(&outfmt, "outfmt", sensitivity.FormatReduced, "result format (reduced|full)")
	cmd.Flags().IntVar(&sampling, "sampling", 100, "keep every Nth row in full format")
	cmd.Flags().BoolVar(&cleanup, "cleanup", true, "remove generated model files afterwards")
	cmd.Flags().StringVar(&resultfile, "resultfile", "sensitivity_analysis.csv", "output CSV file")
	return cmd
}
