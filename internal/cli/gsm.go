package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kincproject/kinc/internal/gsm"
)

func (c *cli) newGSM2SpecCmd() *cobra.Command {
	var (
		name       string
		author     string
		outputfile string
		opts       = gsm.DefaultConvertOptions()
	)
	cmd := &cobra.Command{
		Use:   "gsm2spec <exportfile>",
		Short: "Convert a genome-scale model export into a kinetic model file",
		Long: "Converts a genome-scale model, exported as JSON by an external " +
			"flux-analysis tool, into a model specification with Michaelis-Menten " +
			"rate laws over the exported reaction network.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			export, err := gsm.LoadExport(args[0])
			if err != nil {
				return err
			}
			opts.ModelName = name
			opts.Author = author
			spec := gsm.Convert(cmd.Context(), export.Reactions, export.Medium, opts)
			if err := spec.WriteFile(outputfile); err != nil {
				return err
			}
			fmt.Fprintf(c.app.Out(), "Output converted model file: %s\n", outputfile)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "model name for the Identifiers stanza")
	cmd.Flags().StringVar(&author, "author", "", "model author for the Identifiers stanza")
	cmd.Flags().Float64Var(&opts.MetaboliteInitial, "metabolite-initial", opts.MetaboliteInitial, "initial metabolite concentration")
	cmd.Flags().Float64Var(&opts.EnzymeConc, "enzyme-conc", opts.EnzymeConc, "enzyme concentration")
	cmd.Flags().Float64Var(&opts.EnzymeKcat, "enzyme-kcat", opts.EnzymeKcat, "enzyme turnover number")
	cmd.Flags().Float64Var(&opts.EnzymeKm, "enzyme-km", opts.EnzymeKm, "enzyme Michaelis-Menten constant")
	cmd.Flags().StringVar(&outputfile, "outputfile", "converted.modelspec", "output specification file")
	return cmd
}
