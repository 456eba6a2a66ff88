package gears

import (
	"fmt"
	"math"
)

// teethSlack absorbs the rounding error of asin so that a radius produced by
// [GearRadius] maps back to the same tooth count.
const teethSlack = 1e-9

// TeethCount returns the number of teeth of the given tooth width and depth
// that fit around a gear whose tooth tips reach radius:
//
//	⌊π / asin(toothWidth / 2(radius − toothDepth))⌋
//
// It fails with [ErrInvalidTooth] for non-positive tooth dimensions or a radius
// no larger than the tooth depth, and with [ErrDegenerateTeeth] if the asin
// argument leaves (0, 1) or fewer than three teeth fit.
func TeethCount(radius, toothWidth, toothDepth float64) (int, error) {
	if !finitePositive(toothWidth) || !finitePositive(toothDepth) {
		return 0, fmt.Errorf("%w: width %g, depth %g", ErrInvalidTooth, toothWidth, toothDepth)
	}
	if !(radius > toothDepth) || math.IsInf(radius, 0) {
		return 0, fmt.Errorf("%w: radius %g must exceed tooth depth %g", ErrInvalidTooth, radius, toothDepth)
	}
	if x := toothWidth / (2 * (radius - toothDepth)); !(x > 0 && x < 1) {
		return 0, fmt.Errorf("%w: tooth width %g doesn't fit radius %g", ErrDegenerateTeeth, toothWidth, radius)
	}
	n := teethCount(radius, toothWidth, toothDepth)
	if n < 3 {
		return n, fmt.Errorf("%w: radius %g holds %d teeth", ErrDegenerateTeeth, radius, n)
	}
	return n, nil
}

// teethCount is TeethCount without validation. It returns 0 where the formula
// is undefined.
func teethCount(radius, toothWidth, toothDepth float64) int {
	n := math.Floor(math.Pi/math.Asin(toothWidth/(2*(radius-toothDepth))) + teethSlack)
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	return int(n)
}

// GearRadius is the inverse of [TeethCount]: the outer radius at which exactly
// teeth teeth of the given width and depth fit.
func GearRadius(teeth int, toothWidth, toothDepth float64) float64 {
	return toothWidth/(2*math.Sin(math.Pi/float64(teeth))) + toothDepth
}

// SnapRadius moves radius to the outer radius of a whole number of teeth. The
// tooth count is that of radius, clamped to the counts whose gears lie within
// [minRadius, maxRadius]. If no count does, the result is NaN; see
// [Config.Validate].
func SnapRadius(radius, minRadius, maxRadius, toothWidth, toothDepth float64) float64 {
	fewest, most, ok := teethRange(minRadius, maxRadius, toothWidth, toothDepth)
	if !ok {
		return math.NaN()
	}
	teeth := min(max(teethCount(radius, toothWidth, toothDepth), fewest), most)
	return GearRadius(teeth, toothWidth, toothDepth)
}

// teethRange returns the fewest and the most teeth of a gear whose radius lies
// within [minRadius, maxRadius]. Gears have at least three teeth. It reports
// false if the range holds no such gear.
func teethRange(minRadius, maxRadius, toothWidth, toothDepth float64) (fewest, most int, ok bool) {
	fewest = max(teethCount(minRadius, toothWidth, toothDepth), 3)
	for GearRadius(fewest, toothWidth, toothDepth) < minRadius {
		fewest++
	}
	most = teethCount(maxRadius, toothWidth, toothDepth)
	for most >= fewest && GearRadius(most, toothWidth, toothDepth) > maxRadius {
		most--
	}
	return fewest, most, most >= fewest
}

// shrinkTooth returns the radius of a gear with one tooth less than a gear of
// the given radius.
func shrinkTooth(radius, toothWidth, toothDepth float64) float64 {
	return GearRadius(teethCount(radius, toothWidth, toothDepth)-1, toothWidth, toothDepth)
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
