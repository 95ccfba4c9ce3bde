package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audio-review/cmd/review/cmd/batch"
	"audio-review/cmd/review/cmd/clean"
	"audio-review/cmd/review/cmd/export"
	"audio-review/cmd/review/cmd/initdb"
	"audio-review/cmd/review/cmd/reset"
	"audio-review/cmd/review/cmd/serve"
	"audio-review/cmd/review/cmd/transcribe"
	"audio-review/cmd/review/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "review",
	Short: "Backend for reviewing and rating audio transcriptions",
	Long: `Backend for reviewing and rating audio transcriptions.
- Serves the audio files and their transcription history over HTTP
- Imports batches of transcriptions produced offline
- Every submitted transcription is kept, identical resubmissions are ignored.`,
	TraverseChildren: true,
	SilenceUsage:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(initdb.Cmd)
	rootCmd.AddCommand(batch.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(reset.Cmd)
	rootCmd.AddCommand(clean.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
