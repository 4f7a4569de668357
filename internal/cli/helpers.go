package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/aretw0/offhook/internal/presentation/tui"
	"github.com/aretw0/offhook/pkg/runner"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
				// Context cancelled elsewhere
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// createRunnerOptions prepares the functional options for the Runner.
func createRunnerOptions(opts RunOptions, logger *slog.Logger) ([]runner.Option, error) {
	ro := []runner.Option{
		runner.WithLogger(logger),
		runner.WithHeadless(opts.Headless),
		runner.WithInput(opts.In),
		runner.WithOutput(opts.Out),
		runner.WithMaxInputSize(opts.MaxInputSize),
	}

	switch {
	case opts.JSON:
		h := runner.NewJSONHandler(opts.In, opts.Out)
		h.MaxInputSize = opts.MaxInputSize
		ro = append(ro, runner.WithInputHandler(h))
	case opts.Markdown && !opts.Headless:
		render, err := tui.NewRenderer()
		if err != nil {
			return nil, err
		}
		ro = append(ro, runner.WithRenderer(render))
	case opts.Color && !opts.Headless:
		ro = append(ro, runner.WithStateFormatter(tui.NewStyler(opts.Out, true).State))
	}

	return ro, nil
}

func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF)
}

func handleExecutionError(err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		return nil // Exit 0 for interruptions
	}
	return err
}

func logCompletion(w io.Writer, state string, err error, quiet bool, sig os.Signal) {
	if quiet || err == nil {
		return
	}

	if isInterrupted(err) {
		if sig == os.Interrupt {
			fmt.Fprintf(w, "[CTRL+C]\n")
			printSystemMessage(w, "Interrupted while %s.", state)
		} else {
			fmt.Fprintf(w, "\n")
			printSystemMessage(w, "Terminated while %s.", state)
		}
	}
}
