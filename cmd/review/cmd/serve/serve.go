package serve

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audio-review/cmd/review/cmd/cmdutil"
	"audio-review/internal/app"
)

var initStore bool
var shutdownTimeout time.Duration

func init() {
	Cmd.Flags().BoolVar(&initStore, "init-db", false, "initialize the transcriptions table before serving")
	Cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 10*time.Second, "how long in-flight requests may finish on shutdown")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the review API, the audio files and the front end",
	Long: `Serve the review API, the audio files and the front end

- GET  /api/audio-files lists audio files with their transcription history
- POST /api/save-transcription appends a transcription
- POST /api/transcriptions/:id/rating rates one transcription
- POST /api/init-db creates the transcriptions table`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := cmdutil.Setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx, stop := cmdutil.SignalContext()
		defer stop()

		if initStore {
			if err := initialize(ctx, rt); err != nil {
				return err
			}
		}

		srv, cleanup, err := app.InitializeServer(ctx, rt.Config, rt.Logger, rt.Metrics)
		if err != nil {
			return err
		}
		defer cleanup()

		errCh := srv.Start()
		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func initialize(ctx context.Context, rt *cmdutil.Runtime) error {
	store, cleanup, err := app.InitializeStore(rt.Config, rt.Metrics)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := store.Initialize(ctx); err != nil {
		return err
	}
	rt.Logger.Info("transcriptions table ready", zap.String("driver", rt.Config.Database.Driver))
	return nil
}
