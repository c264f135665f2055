// The reel command runs and inspects cue sheets: textual timeline
// definitions dispatched by a scheduler as an abstract clock advances.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var logger zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "reel",
	Short: "Run and inspect timeline cue sheets.",
	Long: `Reel drives time-bounded actions as an abstract clock advances. ` +
		`A cue sheet names tracks of non-overlapping cuts; simultaneously ` +
		`active cuts across tracks are folded through their blends.`,
}

func init() {
	// Missing .env files are fine; the environment only provides defaults.
	_ = godotenv.Load()

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
