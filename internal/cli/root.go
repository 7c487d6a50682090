package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/kincproject/kinc/internal/app"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
)

// cli carries the state shared across subcommands: the writers handed in
// by main and the App built from the global flags.
type cli struct {
	outW io.Writer
	logW io.Writer
	cfg  app.Config
	app  *app.App
}

// New builds the root command with every subcommand attached. Command
// output goes to outW, log records to logW.
func New(outW, logW io.Writer) *cobra.Command {
	c := &cli{outW: outW, logW: logW}

	root := &cobra.Command{
		Use:           "kinc",
		Short:         "Compile, merge and simulate kinetic reaction-network models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.app = app.New(c.outW, c.logW, c.cfg)
			cmd.SetContext(c.app.Context(cmd.Context()))
		},
	}
	root.SetOut(outW)
	root.SetErr(logW)

	pf := root.PersistentFlags()
	pf.StringVar(&c.cfg.LogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	pf.StringVar(&c.cfg.LogFormat, "log-format", "text", "log format (text|json)")

	root.AddCommand(
		c.newGenODECmd(),
		c.newRunODECmd(),
		c.newMergeCmd(),
		c.newGenMOCmd(),
		c.newNetworkCmd(),
		c.newPrintSpecCmd(),
		c.newReadModelCmd(),
		c.newReadFluxCmd(),
		c.newSenGenCmd(),
		c.newLSACmd(),
		c.newGSM2SpecCmd(),
	)
	return root
}

// loadSpecs reads every model file in extended mode, building the entity
// table of each.
func (c *cli) loadSpecs(ctx context.Context, paths []string) ([]*modelspec.Specification, []*network.EntityTable, error) {
	specs := make([]*modelspec.Specification, 0, len(paths))
	tables := make([]*network.EntityTable, 0, len(paths))
	for _, path := range paths {
		spec, table, err := app.LoadModel(ctx, path, app.MTypeSpec, modelspec.ModeExtended)
		if err != nil {
			return nil, nil, err
		}
		specs = append(specs, spec)
		tables = append(tables, table)
	}
	return specs, tables, nil
}
