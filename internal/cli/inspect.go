package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kincproject/kinc/internal/app"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
)

func (c *cli) newPrintSpecCmd() *cobra.Command {
	var readertype string
	cmd := &cobra.Command{
		Use:   "printspec <modelfile>",
		Short: "Print every stanza/key/value triple of a model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := modelspec.Mode(readertype)
			if mode != modelspec.ModeBasic && mode != modelspec.ModeExtended {
				return fmt.Errorf("readertype can only be basic or extended, %q given", readertype)
			}
			spec, err := modelspec.Load(args[0], mode)
			if err != nil {
				return err
			}
			out := c.app.Out()
			for _, stanza := range spec.StanzaNames() {
				for _, key := range spec.Keys(stanza) {
					value, err := spec.Get(stanza, key)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s/%s = %s\n", stanza, key, value)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&readertype, "readertype", "extended", "value resolution mode (basic|extended)")
	return cmd
}

func (c *cli) newReadModelCmd() *cobra.Command {
	var mtype string
	cmd := &cobra.Command{
		Use:   "readmodel <modelfile>",
		Short: "Print model identifiers and per-entity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, table, err := app.LoadModel(cmd.Context(), args[0], mtype, modelspec.ModeExtended)
			if err != nil {
				return err
			}
			out := c.app.Out()
			if ids, ok := spec.Stanza(modelspec.StanzaIdentifiers); ok {
				fmt.Fprintln(out, "-------- Model Identifiers --------")
				for _, key := range ids.Keys() {
					value, _ := spec.Get(modelspec.StanzaIdentifiers, key)
					fmt.Fprintf(out, "%s: %s\n", key, value)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, "-------- Model Entities --------")
			for _, name := range table.Names() {
				e, _ := table.Get(name)
				fmt.Fprintf(out, "Name: %s\n", e.Name)
				fmt.Fprintf(out, "Description: %s\n", e.Description)
				fmt.Fprintf(out, "Initial: %g\n", e.Initial)
				fmt.Fprintln(out, "Influx:")
				printFlux(out, e.Influx)
				fmt.Fprintln(out, "Outflux:")
				printFlux(out, e.Outflux)
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mtype, "mtype", app.MTypeSpec, "model file type (ASM|MO)")
	return cmd
}

func printFlux(out io.Writer, m *network.FluxMap) {
	for _, id := range m.IDs() {
		eq, _ := m.Get(id)
		fmt.Fprintf(out, "  %s: %s\n", id, eq)
	}
}

func (c *cli) newReadFluxCmd() *cobra.Command {
	var mtype string
	cmd := &cobra.Command{
		Use:   "readflux <modelfile>",
		Short: "Print per-entity production and usage reaction tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, table, err := app.LoadModel(cmd.Context(), args[0], mtype, modelspec.ModeExtended)
			if err != nil {
				return err
			}
			out := c.app.Out()
			fmt.Fprintln(out, strings.Join([]string{"Name", "Productions", "Usages"}, "|"))
			for _, name := range table.Names() {
				e, _ := table.Get(name)
				fmt.Fprintln(out, strings.Join([]string{
					e.Name,
					joinOrNil(e.Influx.IDs()),
					joinOrNil(e.Outflux.IDs()),
				}, "|"))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&mtype, "mtype", app.MTypeSpec, "model file type (ASM|MO)")
	return cmd
}

func joinOrNil(ids []string) string {
	if len(ids) == 0 {
		return "NIL"
	}
	return strings.Join(ids, "; ")
}
