package timeline

// Interrupt is the answer an interrupt predicate gives when polled.
type Interrupt int

// The two possible interrupt answers. Break makes the run loop return
// before the current step's action executes.
const (
	Continue Interrupt = iota
	Break
)

// An InterruptFunc is polled once per step of a bounded run. It must not
// block; it is expected to observe an externally updated signal, not to
// perform work of its own.
type InterruptFunc func(t VTime) Interrupt

// StepInfo is the hook item a Scheduler publishes around each step of a
// bounded run.
type StepInfo struct {
	Time       VTime
	Value      any
	Dispatched bool
}

// A Scheduler owns a set of Tracks and one TimeGenerator and resolves which
// cuts are authoritative as the generator advances. Tracks may overlap one
// another; simultaneous outputs are folded through the cuts' blends.
//
// A Scheduler is single-threaded and synchronous. Stepping the generator is
// the only mutation it performs; track contents are fixed for its lifetime.
type Scheduler struct {
	HookableBase

	tracks    []*Track
	timeGen   TimeGenerator
	interrupt InterruptFunc
}

// NewScheduler creates a Scheduler that owns the given tracks and time
// generator. Tracks are independently valid by construction; no cross-track
// invariant exists to check here.
func NewScheduler(tracks []*Track, gen TimeGenerator) *Scheduler {
	return &Scheduler{
		tracks:  tracks,
		timeGen: gen,
	}
}

// CurrentTime returns the generator's present time.
func (s *Scheduler) CurrentTime() VTime {
	return s.timeGen.Current()
}

// TimeGenerator returns the generator that drives the scheduler.
func (s *Scheduler) TimeGenerator() TimeGenerator {
	return s.timeGen
}

// Tracks returns the scheduler's tracks. The returned slice must not be
// modified.
func (s *Scheduler) Tracks() []*Track {
	return s.tracks
}

// ActiveCuts queries every track and returns the cuts active at t, in track
// order. The result is recomputed on every call.
func (s *Scheduler) ActiveCuts(t VTime) []*Cut {
	var active []*Cut

	for _, tr := range s.tracks {
		if c := tr.Active(t); c != nil {
			active = append(active, c)
		}
	}

	return active
}

// ValueAt resolves the authoritative value at t. The first active cut's
// output seeds the result; the remaining active cuts are folded in
// left-to-right in track order through ReactBlend. It returns ok == false
// when no track has an active cut at t, or when every active behavior is
// disabled.
//
// ValueAt is pure with respect to scheduler state; it never touches the
// time generator.
func (s *Scheduler) ValueAt(t VTime) (any, bool) {
	active := s.ActiveCuts(t)
	if len(active) == 0 {
		return nil, false
	}

	value, ok := active[0].React(t)
	for _, next := range active[1:] {
		value, ok = next.ReactBlend(value, ok, t)
	}

	return value, ok
}

// NextValue advances the generator one step and evaluates the schedule at
// the pre-step time, consistent with the Tick contract.
func (s *Scheduler) NextValue() (any, bool) {
	return s.ValueAt(s.timeGen.Tick())
}

// PrevValue steps the generator backward and evaluates the schedule at the
// pre-step time.
func (s *Scheduler) PrevValue() (any, bool) {
	return s.ValueAt(s.timeGen.Untick())
}

// InterruptibleWith makes bounded runs poll the given predicate once per
// step, before the step's action executes. The predicate must not block and
// should return as soon as possible.
func (s *Scheduler) InterruptibleWith(f InterruptFunc) {
	s.interrupt = f
}

// EndTime returns the largest stop time over all tracks, which is where a
// bounded run terminates. The second return value is false when every track
// is empty.
func (s *Scheduler) EndTime() (VTime, bool) {
	var end VTime
	found := false

	for _, tr := range s.tracks {
		_, stop, ok := tr.Span()
		if !ok {
			continue
		}

		if !found || compareVTime(stop, end) > 0 {
			end = stop
			found = true
		}
	}

	return end, found
}

// Run resets the generator and steps the schedule forward until the current
// time reaches or passes the end of the last cut, dispatching the resolved
// value at every step. Hooks fire before and after each step; the interrupt
// predicate, if any, is polled before each step and a Break answer returns
// immediately without executing that step's action.
//
// Repeated random access during the run stays logarithmic in the total
// number of cuts per track.
func (s *Scheduler) Run() error {
	end, ok := s.EndTime()
	if !ok {
		return nil
	}

	s.timeGen.Reset()

	for {
		t := s.timeGen.Current()

		if s.interrupt != nil && s.interrupt(t) == Break {
			return nil
		}

		info := StepInfo{Time: t}
		s.InvokeHook(HookCtx{Domain: s, Pos: HookPosBeforeStep, Item: info})

		info.Value, info.Dispatched = s.ValueAt(t)

		s.InvokeHook(HookCtx{Domain: s, Pos: HookPosAfterStep, Item: info})

		s.timeGen.Tick()

		if compareVTime(s.timeGen.Current(), end) >= 0 {
			return nil
		}
	}
}
