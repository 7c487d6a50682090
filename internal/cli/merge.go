package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kincproject/kinc/internal/app"
	"github.com/kincproject/kinc/internal/merge"
)

func (c *cli) newMergeCmd() *cobra.Command {
	var (
		prefix     string
		outputfile string
	)
	cmd := &cobra.Command{
		Use:   "merge <modelfile>...",
		Short: "Merge model files into a single specification",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			specs, tables, err := c.loadSpecs(ctx, args)
			if err != nil {
				return err
			}
			merged, _, err := merge.Merge(ctx, specs, tables, merge.Options{
				Prefix:     prefix,
				MergeSpecs: true,
			})
			if err != nil {
				return err
			}
			if err := merged.WriteFile(outputfile); err != nil {
				return err
			}
			fmt.Fprintf(c.app.Out(), "Output merged model file: %s\n", outputfile)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "exp", "prefix for renumbered reaction ids")
	cmd.Flags().StringVar(&outputfile, "outputfile", "merged.modelspec", "output specification file")
	return cmd
}

func (c *cli) newGenMOCmd() *cobra.Command {
	var (
		prefix     string
		outputfile string
	)
	cmd := &cobra.Command{
		Use:   "genmo <modelfile>...",
		Short: "Merge model files into a processed-model snapshot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			specs, tables, err := c.loadSpecs(ctx, args)
			if err != nil {
				return err
			}
			mergedSpec, mergedTable, err := merge.Merge(ctx, specs, tables, merge.Options{
				Prefix:      prefix,
				MergeSpecs:  true,
				MergeTables: true,
			})
			if err != nil {
				return err
			}
			snap := &app.Snapshot{Spec: mergedSpec, Table: mergedTable}
			if err := app.WriteSnapshot(outputfile, snap); err != nil {
				return err
			}
			fmt.Fprintf(c.app.Out(), "Output model snapshot file: %s\n", outputfile)
			return nil
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "exp", "prefix for renumbered reaction ids")
	cmd.Flags().StringVar(&outputfile, "outputfile", "model.mo", "output snapshot file")
	return cmd
}
