// Package bounds validates and clamps numbers produced by the generative collaborator.
// Nothing read from a model payload is trusted until it has passed through here.
package bounds

// Score limits for adjusted scores.
const (
	MinScore = 1
	MaxScore = 100
)

// DefaultTolerance is how far an adjusted score may move from the base score.
const DefaultTolerance = 7

// ClampRange forces a score into [MinScore, MaxScore].
func ClampRange(score int) (clamped int) {
	clamped = score
	if clamped < MinScore {
		clamped = MinScore
	}
	if clamped > MaxScore {
		clamped = MaxScore
	}
	return clamped
}

// Window returns the accepted interval for an adjustment of base:
// [base-tolerance, base+tolerance] intersected with [MinScore, MaxScore].
// base is clamped into the range first. A non-positive tolerance yields the full range.
func Window(base, tolerance int) (low, high int) {
	low, high = MinScore, MaxScore
	if tolerance <= 0 {
		return low, high
	}
	base = ClampRange(base)
	if base-tolerance > low {
		low = base - tolerance
	}
	if base+tolerance < high {
		high = base + tolerance
	}
	return low, high
}

// ClampToWindow clamps an adjusted score into the range and then into the tolerance window around base.
func ClampToWindow(base, adjusted, tolerance int) (clamped int) {
	clamped = ClampRange(adjusted)
	low, high := Window(base, tolerance)
	if clamped < low {
		clamped = low
	}
	if clamped > high {
		clamped = high
	}
	return clamped
}
