package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [cue sheet]",
	Short: "Validate a cue sheet and print its tracks.",
	Args:  cobra.ExactArgs(1),
	RunE:  inspectSheet,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func inspectSheet(cmd *cobra.Command, args []string) error {
	scheduler, err := loadScheduler(args[0])
	if err != nil {
		return err
	}

	for i, track := range scheduler.Tracks() {
		start, stop, ok := track.Span()
		if !ok {
			fmt.Printf("track %d: empty\n", i)
			continue
		}

		fmt.Printf("track %d: %d cuts over [%v, %v)\n",
			i, track.Len(), start, stop)

		for _, cut := range track.Cuts() {
			blend := ""
			if cut.HasBlend() {
				blend = " (blended)"
			}

			fmt.Printf("  cut %s: [%v, %v)%s\n",
				cut.ID, cut.Start(), cut.Stop(), blend)
		}
	}

	if end, ok := scheduler.EndTime(); ok {
		fmt.Printf("run ends at %v\n", end)
	}

	return nil
}
