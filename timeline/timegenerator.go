package timeline

// A TimeGenerator supplies the notion of "current time" to a Scheduler and
// steps it forward or backward. Implementations do not have to be monotonic;
// any source that satisfies this contract can drive a schedule.
type TimeGenerator interface {
	// Current returns the present time without side effects.
	Current() VTime

	// Tick advances the current time by the delta and returns the value the
	// generator was at *before* advancing. Callers rely on this ordering:
	// the first Tick after a Reset returns the reset value itself.
	Tick() VTime

	// Untick is symmetric to Tick. It captures the current time, steps
	// backward by the delta, and returns the captured value.
	Untick() VTime

	// Reset sets the current time back to the generator's reset value.
	Reset()

	// Set unconditionally overwrites the current time.
	Set(t VTime)

	// ChangeDelta replaces the step size used by future Tick and Untick
	// calls. It does not retroactively affect the current time.
	ChangeDelta(delta VTime)
}

// TimeTeller can be used to get the current time.
type TimeTeller interface {
	CurrentTime() VTime
}

// A LinearGenerator is the reference TimeGenerator. It steps time linearly
// by a fixed, replaceable delta.
type LinearGenerator struct {
	current    VTime
	resetValue VTime
	delta      VTime
}

// NewLinearGenerator creates a LinearGenerator that starts at resetValue and
// steps by delta.
func NewLinearGenerator(resetValue, delta VTime) *LinearGenerator {
	return &LinearGenerator{
		current:    resetValue,
		resetValue: resetValue,
		delta:      delta,
	}
}

// Current returns the present time.
func (g *LinearGenerator) Current() VTime {
	return g.current
}

// Tick returns the present time and then advances by the delta.
func (g *LinearGenerator) Tick() VTime {
	t := g.current
	g.current += g.delta
	return t
}

// Untick returns the present time and then steps back by the delta.
func (g *LinearGenerator) Untick() VTime {
	t := g.current
	g.current -= g.delta
	return t
}

// Reset sets the current time back to the reset value.
func (g *LinearGenerator) Reset() {
	g.Set(g.resetValue)
}

// Set overwrites the current time.
func (g *LinearGenerator) Set(t VTime) {
	g.current = t
}

// ChangeDelta replaces the step size.
func (g *LinearGenerator) ChangeDelta(delta VTime) {
	g.delta = delta
}

// Delta returns the step size in use.
func (g *LinearGenerator) Delta() VTime {
	return g.delta
}
