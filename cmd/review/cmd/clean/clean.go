package clean

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio-review/cmd/review/cmd/cmdutil"
	"audio-review/internal/app"
)

// Cmd represents the clean-timestamps command
var Cmd = &cobra.Command{
	Use:   "clean-timestamps",
	Short: "Delete transcriptions that have no timestamp",
	Long: `Delete transcriptions that have no timestamp

- Rows without a timestamp cannot be ordered in a file's history`,
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

		n, err := store.DeleteNullTimestamps(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d rows with null timestamps\n", n)
		return nil
	},
}
