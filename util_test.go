package gears

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// sameAngle reports whether a and b denote the same direction, within Epsilon.
func sameAngle(a, b float64) bool {
	d := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	return d < Epsilon || math.Abs(d-tau) < Epsilon
}
