package playback

import (
	"github.com/rs/xid"

	"github.com/reelworks/reel/monitoring"
	"github.com/reelworks/reel/recording"
	"github.com/reelworks/reel/timeline"
)

// Builder can be used to build a playback session.
type Builder struct {
	scheduler *timeline.Scheduler

	recordingOn    bool
	outputFileName string
	monitorOn      bool
	monitorPort    int
}

// MakeBuilder creates a new builder with recording on and monitoring off.
func MakeBuilder() Builder {
	return Builder{
		recordingOn: true,
	}
}

// WithScheduler sets the scheduler the session drives.
func (b Builder) WithScheduler(s *timeline.Scheduler) Builder {
	b.scheduler = s
	return b
}

// WithoutRecording disables the step recorder.
func (b Builder) WithoutRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the step recorder,
// without the .sqlite3 suffix.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithMonitoring enables the monitoring server.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.scheduler == nil {
		panic("a session requires a scheduler")
	}

	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

// Build builds the session.
func (b Builder) Build() *Session {
	b.parametersMustBeValid()

	s := &Session{
		id:        xid.New().String(),
		scheduler: b.scheduler,
	}

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "reel_session_" + s.id
		}

		s.recorder = recording.NewRecorder(outputPath)
		s.scheduler.AcceptHook(recording.NewStepRecorder(s.recorder))
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterScheduler(s.scheduler)
		s.monitor.StartServer()
	}

	return s
}
