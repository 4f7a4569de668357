package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/offhook/pkg/domain"
	"github.com/aretw0/offhook/pkg/ports"
)

// Console messages.
const (
	MsgCurrentState  = "The phone is currently"
	MsgSelectTrigger = "Select a trigger:"
	MsgIncorrect     = "Incorrect option. Please try again."
	MsgDone          = "We are done using the phone."
	msgHeader        = "--- offhook ---"
)

// Runner drives a state machine from a console: it shows the current state
// and the numbered transitions, reads a selection and applies it until the
// machine is terminal.
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler over Input/Output is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	Input        io.Reader
	Output       io.Writer
	Headless     bool
	Renderer     ContentRenderer
	Formatter    StateFormatter
	MaxInputSize int
}

// New creates a Runner with default Stdin/Stdout.
func New(opts ...Option) *Runner {
	r := &Runner{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run executes the loop until the machine is terminal, the input ends, the
// user types exit/quit, or ctx is cancelled. Only cancellation and IO
// failures are reported as errors.
func (r *Runner) Run(ctx context.Context, machine ports.StateMachine) error {
	handler := r.resolveHandler()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if machine.IsTerminal() {
			r.Logger.Info("Session finished", "state", machine.CurrentState().Name())
			return handler.SystemOutput(ctx, MsgDone)
		}

		prompt := Prompt{
			State:   machine.CurrentState(),
			Options: machine.AvailableTransitions(),
		}
		if err := handler.Output(ctx, prompt); err != nil {
			return fmt.Errorf("output error: %w", err)
		}

		text, err := handler.Input(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				r.Logger.Info("Input closed", "state", prompt.State.Name())
				return nil
			case errors.Is(err, ErrInputTooLarge), errors.Is(err, ErrInvalidUTF8):
				r.Logger.Warn("Input rejected", "error", err)
				if err := handler.SystemOutput(ctx, MsgIncorrect); err != nil {
					return fmt.Errorf("output error: %w", err)
				}
				continue
			case ctx.Err() != nil:
				return ctx.Err()
			}
			return fmt.Errorf("input error: %w", err)
		}

		if isQuit(text) {
			r.Logger.Info("Session abandoned", "state", prompt.State.Name())
			return nil
		}

		index, err := strconv.Atoi(text)
		if err != nil {
			r.Logger.Debug("Non-numeric selection", "input", text)
			if err := handler.SystemOutput(ctx, MsgIncorrect); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
			continue
		}

		if _, err := machine.Apply(index); err != nil {
			if !errors.Is(err, domain.ErrInvalidSelection) {
				return err
			}
			if err := handler.SystemOutput(ctx, MsgIncorrect); err != nil {
				return fmt.Errorf("output error: %w", err)
			}
		}
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler != nil {
		return r.Handler
	}
	th := NewTextHandler(r.Input, r.Output,
		WithTextHandlerRenderer(r.Renderer),
		WithTextHandlerFormatter(r.Formatter),
		WithTextHandlerMaxInputSize(r.MaxInputSize),
	)
	if !r.Headless && r.Output != nil {
		fmt.Fprintln(r.Output, msgHeader)
	}
	// Memoize to prevent creating new pumps on subsequent Run() calls
	r.Handler = th
	return th
}

func isQuit(text string) bool {
	switch strings.ToLower(text) {
	case "exit", "quit":
		return true
	}
	return false
}
