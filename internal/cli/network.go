package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kincproject/kinc/internal/netmap"
)

func (c *cli) newNetworkCmd() *cobra.Command {
	var (
		outfmt     string
		outputfile string
	)
	cmd := &cobra.Command{
		Use:   "network <modelfile>...",
		Short: "Project model reactions into a visualization edge list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			specs, _, err := c.loadSpecs(ctx, args)
			if err != nil {
				return err
			}
			lines, err := netmap.Project(ctx, specs, outfmt)
			if err != nil {
				return err
			}
			if err := os.WriteFile(outputfile, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
				return err
			}
			fmt.Fprintf(c.app.Out(), "Output network file: %s\n", outputfile)
			return nil
		},
	}
	cmd.Flags().StringVar(&outfmt, "outfmt", netmap.FormatSIF, "edge-list format")
	cmd.Flags().StringVar(&outputfile, "outputfile", "network.sif", "output edge-list file")
	return cmd
}
