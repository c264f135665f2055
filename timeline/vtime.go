package timeline

// VTime is a point in the timeline's time domain. What one unit represents
// (a second, a frame, a beat) is entirely up to the application; the
// timeline only relies on ordering and subtraction.
type VTime float64

// compareVTime orders a against b three ways: -1 when a sorts before b, 1
// when a sorts after b, and 0 when they are equal. Comparisons involving NaN
// are unordered; they resolve to -1 so that a NaN bound consistently sorts
// before everything else.
func compareVTime(a, b VTime) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	default:
		return -1
	}
}
