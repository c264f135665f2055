// Package playback ties a scheduler together with recording and monitoring
// into a runnable session.
package playback

import (
	"context"

	"github.com/reelworks/reel/monitoring"
	"github.com/reelworks/reel/recording"
	"github.com/reelworks/reel/timeline"
)

// A Session owns a scheduler plus the services around one bounded run:
// an optional step recorder and an optional monitoring server.
type Session struct {
	id string

	scheduler *timeline.Scheduler
	recorder  recording.Recorder
	monitor   *monitoring.Monitor
}

// ID returns the ID of the session.
func (s *Session) ID() string {
	return s.id
}

// Scheduler returns the scheduler driven by the session.
func (s *Session) Scheduler() *timeline.Scheduler {
	return s.scheduler
}

// Recorder returns the data recorder used in the session, or nil when
// recording is disabled.
func (s *Session) Recorder() recording.Recorder {
	return s.recorder
}

// Monitor returns the monitor used in the session, or nil when monitoring is
// disabled.
func (s *Session) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Run performs one bounded run of the schedule. The run breaks
// cooperatively, before the next step's action, when the context is
// canceled, when the monitor received an interrupt request, or when the
// caller-provided interrupt predicate answers Break. Any of the three may be
// absent.
func (s *Session) Run(ctx context.Context, interrupt timeline.InterruptFunc) error {
	s.scheduler.InterruptibleWith(func(t timeline.VTime) timeline.Interrupt {
		select {
		case <-ctx.Done():
			return timeline.Break
		default:
		}

		if s.monitor != nil && s.monitor.InterruptRequested() {
			return timeline.Break
		}

		if interrupt != nil {
			return interrupt(t)
		}

		return timeline.Continue
	})

	var bar *monitoring.ProgressBar
	if s.monitor != nil {
		bar = s.monitor.CreateProgressBar("run "+s.id, s.totalSteps())
		progress := progressHook{bar: bar}
		s.scheduler.AcceptHook(&progress)
	}

	err := s.scheduler.Run()

	if s.recorder != nil {
		s.recorder.Flush()
	}
	if bar != nil {
		s.monitor.CompleteProgressBar(bar)
	}

	return err
}

// totalSteps estimates the number of steps of a full run, for progress
// reporting. Zero means indeterminate; only linear generators with a
// positive delta admit an estimate.
func (s *Session) totalSteps() uint64 {
	end, ok := s.scheduler.EndTime()
	if !ok || end <= 0 {
		return 0
	}

	gen, isLinear := s.scheduler.TimeGenerator().(*timeline.LinearGenerator)
	if !isLinear || gen.Delta() <= 0 {
		return 0
	}

	rate := timeline.Rate(1.0 / float64(gen.Delta()))

	return rate.StepCount(end)
}

// Terminate releases the session's resources.
func (s *Session) Terminate() {
	if s.recorder != nil {
		s.recorder.Close()
	}
}

// progressHook advances a progress bar on every dispatched step.
type progressHook struct {
	bar *monitoring.ProgressBar
}

func (h *progressHook) Func(ctx timeline.HookCtx) {
	if ctx.Pos != timeline.HookPosAfterStep {
		return
	}

	h.bar.IncrementFinished(1)
}
