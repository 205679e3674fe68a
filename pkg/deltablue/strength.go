package deltablue

// Strength ranks constraints. Lower ordinals are stronger; [Required] is the
// strongest and [Weakest] the weakest. The zero value is [Required].
type Strength int

// Strength levels, strongest first.
const (
	Required Strength = iota
	StrongPreferred
	Preferred
	StrongDefault
	Normal
	WeakDefault
	Weakest
)

var strengthNames = [...]string{
	Required:        "required",
	StrongPreferred: "strongPreferred",
	Preferred:       "preferred",
	StrongDefault:   "strongDefault",
	Normal:          "normal",
	WeakDefault:     "weakDefault",
	Weakest:         "weakest",
}

// String returns the strength name, e.g. "strongDefault".
func (s Strength) String() string {
	if s < Required || s > Weakest {
		return "unknown"
	}
	return strengthNames[s]
}

// StrongerThan reports whether s ranks strictly above other.
func (s Strength) StrongerThan(other Strength) bool { return s < other }

// WeakerThan reports whether s ranks strictly below other.
func (s Strength) WeakerThan(other Strength) bool { return s > other }

// StrongestOf returns the stronger of a and b, preferring b on ties.
func StrongestOf(a, b Strength) Strength {
	if a.StrongerThan(b) {
		return a
	}
	return b
}

// WeakestOf returns the weaker of a and b, preferring b on ties.
func WeakestOf(a, b Strength) Strength {
	if a.WeakerThan(b) {
		return a
	}
	return b
}

// DescendingStrengths returns every strength from [Required] down to [Weakest].
func DescendingStrengths() []Strength {
	return []Strength{Required, StrongPreferred, Preferred, StrongDefault, Normal, WeakDefault, Weakest}
}

// Direction records which variable of a binary constraint is its output.
type Direction int

const (
	// DirectionNone means the constraint is not satisfied.
	DirectionNone Direction = iota
	// Forward computes v2 from v1.
	Forward
	// Backward computes v1 from v2.
	Backward
)

// String returns "forward", "backward" or "none".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "none"
	}
}
