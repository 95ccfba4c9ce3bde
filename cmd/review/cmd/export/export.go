package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio-review/cmd/review/cmd/cmdutil"
	"audio-review/internal/app"
	"audio-review/internal/app/export"
)

var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export every stored transcription to excel",
	Long: `Export every stored transcription to excel

- One row per history entry, ordered by file name and time`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := cmdutil.Setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		store, cleanup, err := app.InitializeStore(rt.Config, rt.Metrics)
		if err != nil {
			return err
		}
		defer cleanup()

		transcriptions, err := store.ListAll(cmd.Context())
		if err != nil {
			return err
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			return err
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}
