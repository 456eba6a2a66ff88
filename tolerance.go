package gears

import "math"

// Epsilon is the absolute tolerance used for every comparison of angles and
// distances that come out of atan2, square roots, or accumulated additions.
const Epsilon = 1e-4

const tau = 2 * math.Pi

func approxEqual(a, b float64) bool { return math.Abs(a-b) < Epsilon }

// approxLess reports whether a is less than b by more than Epsilon.
func approxLess(a, b float64) bool { return a < b-Epsilon }

func approxLessOrEqual(a, b float64) bool { return a < b+Epsilon }

// approxGreater reports whether a is greater than b by more than Epsilon.
func approxGreater(a, b float64) bool { return a > b+Epsilon }

func approxGreaterOrEqual(a, b float64) bool { return a > b-Epsilon }

// approxIn reports whether x lies in [lo, hi], widened by Epsilon at both
// ends.
func approxIn(x, lo, hi float64) bool {
	return x >= lo-Epsilon && x <= hi+Epsilon
}

// NormalizeAngle maps an angle to [0, 2π). Angles within Epsilon below a full
// turn map to 0.
func NormalizeAngle(th float64) float64 {
	th = math.Mod(th, tau)
	if th < 0 {
		th += tau
	}
	if approxEqual(th, tau) {
		return 0
	}
	return th
}
