package reset

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio-review/cmd/review/cmd/cmdutil"
	"audio-review/internal/app"
)

var confirm bool

func init() {
	Cmd.Flags().BoolVarP(&confirm, "yes", "y", false, "confirm that every transcription should be deleted")
}

// Cmd represents the reset command
var Cmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every transcription and restart ids",
	Long: `Delete every transcription and restart ids

- Removes the whole history of every file
- Requires --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm {
			return fmt.Errorf("refusing to delete all transcriptions without --yes")
		}

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

		if err := store.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Table reset successfully")
		return nil
	},
}
