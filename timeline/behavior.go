package timeline

// A Behavior maps a time to an optional value. It is the unit of reusable
// logic bound into Cuts; the same Behavior may back any number of Cuts.
//
// Returning ok == false signals that the behavior is disabled at t. A Cut
// consulting a disabled Behavior acts as if it were inactive for blending
// purposes at that instant. React must be safe to invoke repeatedly with
// arbitrary, possibly non-monotonic, t.
type Behavior interface {
	React(t VTime) (value any, ok bool)
}

// BehaviorFunc adapts an ordinary function to the Behavior interface.
type BehaviorFunc func(t VTime) (any, bool)

// React invokes the wrapped function.
func (f BehaviorFunc) React(t VTime) (any, bool) {
	return f(t)
}

// Const returns a Behavior that produces v whenever it is consulted.
func Const(v any) Behavior {
	return BehaviorFunc(func(VTime) (any, bool) {
		return v, true
	})
}
