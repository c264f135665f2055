package timeline

import (
	"log"
)

// A LogHook is a hook that is responsible for recording information from a
// running schedule.
type LogHook interface {
	Hook
}

// LogHookBase provides the common logic for all LogHooks
type LogHookBase struct {
	*log.Logger
}

// StepLogger is a hook that prints every dispatched step.
type StepLogger struct {
	LogHookBase
}

// NewStepLogger returns a StepLogger which will write into the logger.
func NewStepLogger(logger *log.Logger) *StepLogger {
	h := new(StepLogger)
	h.Logger = logger
	return h
}

// Func writes the step information into the logger.
func (h *StepLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosAfterStep {
		return
	}

	info, ok := ctx.Item.(StepInfo)
	if !ok {
		return
	}

	if info.Dispatched {
		h.Logger.Printf("%.6f, %v", info.Time, info.Value)
	} else {
		h.Logger.Printf("%.6f, no active cut", info.Time)
	}
}
