package recording

import (
	"fmt"

	"github.com/reelworks/reel/timeline"
)

// StepTableName is the table StepRecorder writes into.
const StepTableName = "steps"

// A StepEntry is one row of a recorded run: one discrete step of the
// scheduler's run loop.
type StepEntry struct {
	Step       uint64
	Time       float64
	Value      string
	Dispatched bool
}

// StepRecorder is a timeline hook that records every step of a bounded run
// into a Recorder.
type StepRecorder struct {
	recorder Recorder

	step uint64
}

// NewStepRecorder creates a StepRecorder writing into the given Recorder.
// The step table is created immediately.
func NewStepRecorder(recorder Recorder) *StepRecorder {
	r := &StepRecorder{recorder: recorder}
	r.recorder.CreateTable(StepTableName, StepEntry{})
	return r
}

// Func records after-step hook invocations.
func (r *StepRecorder) Func(ctx timeline.HookCtx) {
	if ctx.Pos != timeline.HookPosAfterStep {
		return
	}

	info, ok := ctx.Item.(timeline.StepInfo)
	if !ok {
		return
	}

	entry := StepEntry{
		Step:       r.step,
		Time:       float64(info.Time),
		Dispatched: info.Dispatched,
	}
	if info.Dispatched {
		entry.Value = fmt.Sprintf("%v", info.Value)
	}

	r.recorder.InsertData(StepTableName, entry)
	r.step++
}
