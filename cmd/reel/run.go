package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"strconv"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/reelworks/reel/cuesheet"
	"github.com/reelworks/reel/playback"
	"github.com/reelworks/reel/timeline"
)

var runCmd = &cobra.Command{
	Use:   "run [cue sheet]",
	Short: "Run a cue sheet from start to the end of its last cut.",
	Long: `Run loads a cue sheet, builds a playback session, and steps it ` +
		`forward until the last cut ends. Pressing Enter requests a ` +
		`cooperative interrupt; the run breaks before the next step.`,
	Args: cobra.ExactArgs(1),
	RunE: runSheet,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("monitor", envBool("REEL_MONITOR"),
		"serve a monitoring API while running")
	runCmd.Flags().Int("monitor-port", envInt("REEL_MONITOR_PORT"),
		"port for the monitoring API (0 picks a free port)")
	runCmd.Flags().Bool("open", false,
		"open the monitoring page in a browser")
	runCmd.Flags().Bool("no-record", false,
		"do not record the run into a database")
	runCmd.Flags().String("output", os.Getenv("REEL_OUTPUT"),
		"database file to record into, without the .sqlite3 suffix")
	runCmd.Flags().Bool("quiet", false,
		"do not print dispatched steps")
}

func runSheet(cmd *cobra.Command, args []string) error {
	scheduler, err := loadScheduler(args[0])
	if err != nil {
		return err
	}

	builder := playback.MakeBuilder().WithScheduler(scheduler)

	noRecord, _ := cmd.Flags().GetBool("no-record")
	if noRecord {
		builder = builder.WithoutRecording()
	} else if output, _ := cmd.Flags().GetString("output"); output != "" {
		builder = builder.WithOutputFileName(output)
	}

	monitorOn, _ := cmd.Flags().GetBool("monitor")
	monitorPort, _ := cmd.Flags().GetInt("monitor-port")
	if monitorOn || monitorPort > 0 {
		builder = builder.WithMonitoring()
		if monitorPort > 0 {
			builder = builder.WithMonitorPort(monitorPort)
		}
	}

	session := builder.Build()
	defer session.Terminate()

	logger.Info().
		Str("session", session.ID()).
		Str("sheet", args[0]).
		Msg("starting run")

	if open, _ := cmd.Flags().GetBool("open"); open {
		if session.Monitor() == nil {
			logger.Warn().Msg("--open requires --monitor; ignoring")
		} else if err := browser.OpenURL(session.Monitor().URL()); err != nil {
			logger.Warn().Err(err).Msg("cannot open browser")
		}
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		scheduler.AcceptHook(timeline.NewStepLogger(
			log.New(os.Stdout, "", 0)))
	}

	err = session.Run(context.Background(), stdinInterrupt())
	if err != nil {
		return err
	}

	logger.Info().Str("session", session.ID()).Msg("run finished")
	atexit.Exit(0)

	return nil
}

// stdinInterrupt answers Break once a line arrives on standard input. The
// read happens on its own goroutine; the predicate itself never blocks.
func stdinInterrupt() timeline.InterruptFunc {
	interrupted := make(chan struct{})

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		close(interrupted)
	}()

	return func(t timeline.VTime) timeline.Interrupt {
		select {
		case <-interrupted:
			logger.Info().Float64("time", float64(t)).Msg("interrupted")
			return timeline.Break
		default:
			return timeline.Continue
		}
	}
}

func loadScheduler(path string) (*timeline.Scheduler, error) {
	sheet, err := cuesheet.Load(path)
	if err != nil {
		return nil, err
	}

	return sheet.Scheduler()
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func envInt(key string) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return 0
	}
	return v
}
