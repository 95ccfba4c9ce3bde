package initdb

import (
	"fmt"

	"github.com/spf13/cobra"

	"audio-review/cmd/review/cmd/cmdutil"
	"audio-review/internal/app"
)

// Cmd represents the init-db command
var Cmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create or upgrade the transcriptions table",
	Long: `Create or upgrade the transcriptions table

- Adds the author and rating columns to tables created by the first schema
- Adds the unique (filename, transcription) index
- Safe to run repeatedly`,
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

		if err := store.Initialize(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Database initialized successfully")
		return nil
	},
}
