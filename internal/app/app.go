package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/kincproject/kinc/internal/ctxlog"
)

// Config holds the ambient settings shared by every command.
type Config struct {
	LogLevel  string
	LogFormat string
}

// App encapsulates the application's shared dependencies: the output
// writer and an isolated logger instance.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
}

// New returns an initialized App. Command output goes to outW; log records
// go to logW so result data and diagnostics never interleave.
func New(outW, logW io.Writer, cfg Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	return &App{outW: outW, logW: logW, logger: logger}
}

// Context derives a context carrying the app's logger from parent.
func (a *App) Context(parent context.Context) context.Context {
	return ctxlog.WithLogger(parent, a.logger)
}

// Logger returns the app's logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Out returns the command-output writer.
func (a *App) Out() io.Writer { return a.outW }
