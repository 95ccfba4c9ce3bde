// Package cmdutil holds the setup shared by the review subcommands.
package cmdutil

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-review/internal/app/logging"
	"audio-review/internal/app/metrics"
	"audio-review/internal/config"
)

// Runtime is what every subcommand needs before wiring its components.
type Runtime struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Setup loads the configuration and builds the logger. The inherited
// --verbose flag forces the development logger.
func Setup(cmd *cobra.Command) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.NewLogger(verbose || !cfg.IsProduction())
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
	}, nil
}

func (r *Runtime) Close() {
	_ = r.Logger.Sync()
}

// SignalContext is cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
