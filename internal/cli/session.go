package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/offhook"
	"github.com/aretw0/offhook/internal/logging"
	"github.com/aretw0/offhook/internal/presentation/tui"
	"github.com/aretw0/offhook/pkg/observability"
	"github.com/aretw0/offhook/pkg/runner"
	"github.com/prometheus/client_golang/prometheus"
)

// RunSession executes a single phone session until it ends or ctx is done.
func RunSession(ctx context.Context, opts RunOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	quiet := opts.JSON || opts.Headless

	if !quiet && opts.Banner {
		tui.PrintBanner(opts.Out, strings.TrimSpace(offhook.Version))
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return err
	}

	phoneOpts := []offhook.Option{
		offhook.WithLogger(logger),
		offhook.WithLifecycleHooks(metrics.Hooks()),
	}
	if opts.RulesPath != "" {
		phoneOpts = append(phoneOpts, offhook.WithRulesFile(opts.RulesPath))
	}
	if opts.SessionID != "" {
		phoneOpts = append(phoneOpts, offhook.WithSessionID(opts.SessionID))
	}

	phone, err := offhook.New(phoneOpts...)
	if err != nil {
		return fmt.Errorf("error initializing phone: %w", err)
	}
	metrics.SetCurrent(phone.CurrentState())

	logger.Info("Session Created", "session_id", phone.SessionID(), "state", phone.CurrentState().Name())

	runnerOpts, err := createRunnerOptions(opts, logger)
	if err != nil {
		return err
	}
	runErr := runner.New(runnerOpts...).Run(ctx, phone)

	var sig os.Signal
	if sc, ok := ctx.(*SignalContext); ok {
		sig = sc.Signal()
	}
	logCompletion(opts.Out, phone.CurrentState().String(), runErr, quiet, sig)

	if opts.MetricsOutput != "" {
		if err := observability.WriteTextfile(reg, opts.MetricsOutput); err != nil {
			logger.Error("Metrics export failed", "path", opts.MetricsOutput, "error", err)
			if runErr == nil {
				runErr = err
			}
		}
	}

	return handleExecutionError(runErr)
}
