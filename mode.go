package chart

// Mode selects how consecutive entries of a data set are joined.
type Mode uint8

const (
	// ModeLinear joins entries with straight segments.
	ModeLinear Mode = iota

	// ModeStepped draws a horizontal then vertical segment per entry pair.
	ModeStepped

	// ModeCubicBezier draws a Catmull-Rom style cubic through the entries.
	ModeCubicBezier

	// ModeHorizontalBezier draws cubics whose control points share the
	// horizontal midpoint, so the curve leaves and enters each entry flat.
	ModeHorizontalBezier
)

var modeNames = [...]string{
	ModeLinear:           "linear",
	ModeStepped:          "stepped",
	ModeCubicBezier:      "cubic",
	ModeHorizontalBezier: "horizontal",
}

// String returns the mode name used by configuration files and flags.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

// ParseMode returns the Mode named s. The second result is false for
// unknown names.
func ParseMode(s string) (Mode, bool) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), true
		}
	}
	return ModeLinear, false
}
