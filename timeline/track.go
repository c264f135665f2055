package timeline

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOverlappingCuts is returned when two cuts on the same track overlap.
var ErrOverlappingCuts = errors.New("overlapping cuts")

// A Track is a time-ordered collection of non-overlapping Cuts. It owns the
// "what is active at time t" query. A Track is immutable once constructed;
// to change a schedule, rebuild the track.
type Track struct {
	cuts []*Cut
}

// NewTrack creates a Track from an unordered collection of cuts. The cuts
// are stable-sorted by start time. Construction fails with
// ErrOverlappingCuts if any two cuts overlap; two cuts overlap when the
// later one starts before the earlier one stops. Sharing a boundary
// (next.Start() == prev.Stop()) is not an overlap.
func NewTrack(cuts []*Cut) (*Track, error) {
	sorted := make([]*Cut, len(cuts))
	copy(sorted, cuts)

	sort.SliceStable(sorted, func(i, j int) bool {
		return compareVTime(sorted[i].start, sorted[j].start) < 0
	})

	for i := 0; i+1 < len(sorted); i++ {
		prev, next := sorted[i], sorted[i+1]
		if compareVTime(next.start, prev.stop) < 0 {
			return nil, fmt.Errorf(
				"%w: cut %s [%v, %v) and cut %s [%v, %v)",
				ErrOverlappingCuts,
				prev.ID, prev.start, prev.stop,
				next.ID, next.start, next.stop)
		}
	}

	return &Track{cuts: sorted}, nil
}

// Len returns the number of cuts on the track.
func (tr *Track) Len() int {
	return len(tr.cuts)
}

// Cuts returns the cuts in sorted order. The returned slice must not be
// modified.
func (tr *Track) Cuts() []*Cut {
	return tr.cuts
}

// Span returns the start of the first cut and the stop of the last cut. The
// second return value is false for an empty track.
func (tr *Track) Span() (start, stop VTime, ok bool) {
	if len(tr.cuts) == 0 {
		return 0, 0, false
	}

	return tr.cuts[0].start, tr.cuts[len(tr.cuts)-1].stop, true
}

// Active returns the cut whose interval contains t, or nil when no cut is
// active. Intervals are matched start-inclusive and stop-exclusive, the same
// convention the overlap check uses, so a boundary instant shared by two
// adjacent cuts belongs to the later one. A NaN query matches nothing.
//
// The lookup is a binary search over the sorted cuts; it runs in O(log n)
// and has no side effects.
func (tr *Track) Active(t VTime) *Cut {
	lo, hi := 0, len(tr.cuts)

	for lo < hi {
		mid := (lo + hi) / 2

		switch intervalPosition(tr.cuts[mid], t) {
		case within:
			return tr.cuts[mid]
		case before:
			hi = mid
		default:
			lo = mid + 1
		}
	}

	return nil
}

// Positions of a query time relative to a cut's interval.
const (
	before = -1
	within = 0
	after  = 1
)

// intervalPosition reports where t sits relative to c's interval, treating
// the interval as [start, stop). Unordered comparisons (NaN) place t before
// the interval.
func intervalPosition(c *Cut, t VTime) int {
	if !(t >= c.start) {
		return before
	}

	if t < c.stop {
		return within
	}

	return after
}
