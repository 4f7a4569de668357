package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// RunOptions collects everything the run command needs.
type RunOptions struct {
	RulesPath     string
	SessionID     string
	Headless      bool
	JSON          bool
	Banner        bool
	Markdown      bool
	Color         bool
	MaxInputSize  int
	MetricsOutput string

	Logger *slog.Logger
	In     io.Reader
	Out    io.Writer
}

// Execute handles the 'run' command logic: it wires signal handling and
// starts a single session.
func Execute(opts RunOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	return RunSession(sigCtx, opts)
}
