package timeline

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval is returned when a cut's stop time is earlier than its
// start time.
var ErrInvalidInterval = errors.New("invalid interval")

// A BlendFunc combines two values produced at the same instant. The first
// argument is the value accumulated from cuts considered earlier, the second
// is the value of the cut carrying the blend.
type BlendFunc func(acc, next any) any

// A Cut restricts a Behavior to a bounded time interval. The interval is
// half-open: a Cut is active for start <= t < stop.
//
// A Cut may carry a BlendFunc. The blend describes how this cut's own output
// should be merged into a result accumulated from cuts considered before it,
// not how later cuts merge into this one.
type Cut struct {
	ID string

	start    VTime
	stop     VTime
	behavior Behavior
	blend    BlendFunc
}

// NewCut creates a Cut over [start, stop) bound to the given Behavior. It
// fails with ErrInvalidInterval when start > stop. No blend is attached by
// default.
func NewCut(start, stop VTime, b Behavior) (*Cut, error) {
	if compareVTime(stop, start) < 0 {
		return nil, fmt.Errorf("%w: start %v is after stop %v",
			ErrInvalidInterval, start, stop)
	}

	return &Cut{
		ID:       GetIDGenerator().Generate(),
		start:    start,
		stop:     stop,
		behavior: b,
	}, nil
}

// WithBlend attaches a blend to the cut and returns the cut for chaining.
func (c *Cut) WithBlend(f BlendFunc) *Cut {
	c.blend = f
	return c
}

// Start returns the start of the cut's interval.
func (c *Cut) Start() VTime {
	return c.start
}

// Stop returns the end of the cut's interval.
func (c *Cut) Stop() VTime {
	return c.stop
}

// Dur returns the duration of the cut. It is never negative.
func (c *Cut) Dur() VTime {
	return c.stop - c.start
}

// HasBlend reports whether a blend is attached to the cut.
func (c *Cut) HasBlend() bool {
	return c.blend != nil
}

// React delegates to the bound Behavior.
func (c *Cut) React(t VTime) (any, bool) {
	return c.behavior.React(t)
}

// ReactBlend merges this cut's output at time t into a value accumulated
// from cuts considered before it:
//
//   - If there is no accumulated value, the result is simply this cut's
//     output.
//   - If this cut carries no blend, the accumulated value wins unchanged.
//   - If this cut carries a blend and produces a value at t, the two are
//     combined through the blend. If it produces nothing, the accumulated
//     value is kept.
//
// The merge policy always belongs to the later-considered cut, which is the
// receiver.
func (c *Cut) ReactBlend(acc any, accOK bool, t VTime) (any, bool) {
	if !accOK {
		return c.React(t)
	}

	if c.blend == nil {
		return acc, true
	}

	v, ok := c.React(t)
	if !ok {
		return acc, true
	}

	return c.blend(acc, v), true
}
