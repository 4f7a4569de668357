package runner

import (
	"io"
	"log/slog"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInput sets the reader selections are read from.
func WithInput(r io.Reader) Option {
	return func(rn *Runner) {
		rn.Input = r
	}
}

// WithOutput sets the writer prompts are written to.
func WithOutput(w io.Writer) Option {
	return func(rn *Runner) {
		rn.Output = w
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithInputHandler configures a custom IOHandler.
// Input, Output and Renderer are ignored when a handler is set.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithHeadless sets the runner to headless mode.
// Headless runners skip the header line.
func WithHeadless(headless bool) Option {
	return func(r *Runner) {
		r.Headless = headless
	}
}

// WithRenderer configures the content renderer (e.g. TUI, Markdown).
func WithRenderer(renderer ContentRenderer) Option {
	return func(r *Runner) {
		r.Renderer = renderer
	}
}

// WithStateFormatter configures how state labels are displayed.
func WithStateFormatter(f StateFormatter) Option {
	return func(r *Runner) {
		r.Formatter = f
	}
}

// WithMaxInputSize overrides the per-line input limit.
func WithMaxInputSize(n int) Option {
	return func(r *Runner) {
		r.MaxInputSize = n
	}
}
