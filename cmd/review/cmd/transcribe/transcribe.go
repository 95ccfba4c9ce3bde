package transcribe

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"audio-review/cmd/review/cmd/cmdutil"
	"audio-review/internal/app"
	"audio-review/internal/app/importer"
)

var limit int
var showProgress bool

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "transcribe at most this many files, 0 for all")
	Cmd.Flags().BoolVarP(&showProgress, "progress", "p", false, "show a progress bar even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe audio files that have no transcription yet",
	Long: `Transcribe audio files that have no transcription yet

- Lists the configured audio source and skips files with any history
- Sends each remaining file to the OpenAI Whisper API, OPENAI_API_KEY must be set
- Stores the result with author whisper-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := cmdutil.Setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx, stop := cmdutil.SignalContext()
		defer stop()

		backfiller, cleanup, err := app.InitializeBackfiller(ctx, rt.Config, rt.Logger, rt.Metrics)
		if err != nil {
			return err
		}
		defer cleanup()

		progress := importer.NewProgress(importer.ProgressConfig{
			Enabled: importer.ShouldShowProgress(showProgress),
			Writer:  os.Stderr,
		})
		result, err := backfiller.WithProgress(progress).Run(ctx, limit)
		progress.Wait()
		if result != nil {
			fmt.Printf("Transcribed %d of %d files (%d failed)\n", result.Inserted, result.Pending, len(result.Failures))
			for _, f := range result.Failures {
				fmt.Printf("  %s: %v\n", f.Name, f.Err)
			}
		}
		return err
	},
}
