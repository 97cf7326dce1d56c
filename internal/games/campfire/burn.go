// Package campfire implements Ember Story: keep the campfire burning by
// feeding it while the story is told, until the last fragment ends.
package campfire

// BurnState is the fire's animation state, derived from its intensity.
type BurnState int

const (
	BurnLow BurnState = iota
	BurnMedium
	BurnHigh
)

// String returns the clip id used by the animation manifest.
func (s BurnState) String() string {
	switch s {
	case BurnLow:
		return "burn_low"
	case BurnMedium:
		return "burn_medium"
	case BurnHigh:
		return "burn_high"
	default:
		return "burn_unknown"
	}
}

// Thresholds are the two intensity cutoffs between burn states.
type Thresholds struct {
	LowBelow    float64
	MediumBelow float64
}

// DefaultThresholds returns the 0.33 / 0.66 cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{LowBelow: 0.33, MediumBelow: 0.66}
}

// Classify maps an intensity to a burn state. Comparisons are strict:
// a level equal to a cutoff belongs to the higher state. Any real input is
// accepted; an extinguished fire (level < 0) is detected by the caller.
func (t Thresholds) Classify(level float64) BurnState {
	switch {
	case level < t.LowBelow:
		return BurnLow
	case level < t.MediumBelow:
		return BurnMedium
	default:
		return BurnHigh
	}
}
