package main

import (
	"fmt"
	"os"

	"audio-review/cmd/review/cmd"
	"audio-review/internal/config"
)

func main() {
	// Missing .env files are fine; variables may come from the environment.
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration Warning: %v\n", err)
	}

	cmd.Execute()
}
