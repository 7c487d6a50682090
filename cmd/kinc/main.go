package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kincproject/kinc/internal/cli"
)

// main is the entrypoint for the kinc command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command dispatch for easier testing and error
// handling.
func run(outW, logW io.Writer, args []string) error {
	root := cli.New(outW, logW)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
