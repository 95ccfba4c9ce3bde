package batch

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"audio-review/cmd/review/cmd/cmdutil"
	"audio-review/internal/app"
	"audio-review/internal/app/importer"
)

var showProgress bool

func init() {
	Cmd.Flags().BoolVarP(&showProgress, "progress", "p", false, "show a progress bar even when stderr is not a terminal")
}

// Cmd represents the import command
var Cmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a batch of transcriptions from a JSON or YAML file",
	Long: `Import a batch of transcriptions from a JSON or YAML file

- The file holds a list of {name, transcription, timestamp, author} records
- .yaml and .yml files are read as YAML, anything else as JSON
- Invalid records are reported and skipped, the rest are still imported
- Records already stored for the same file are counted as duplicates`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := cmdutil.Setup(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		ctx, stop := cmdutil.SignalContext()
		defer stop()

		progress := importer.NewProgress(importer.ProgressConfig{
			Enabled: importer.ShouldShowProgress(showProgress),
			Writer:  os.Stderr,
		})

		imp, cleanup, err := app.InitializeImporter(rt.Config, rt.Logger, rt.Metrics, progress)
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := imp.Import(ctx, args[0])
		progress.Wait()
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d of %d records (%d duplicates, %d failed)\n",
			report.Inserted, report.Total, report.Duplicates, report.Failed())
		for _, f := range report.Failures {
			fmt.Printf("  %v\n", f)
		}
		return nil
	},
}
