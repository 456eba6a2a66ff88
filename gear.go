package gears

import "math"

// Gear is a toothed wheel placed by a [Filler].
//
// Rotation is the phase of tooth 0 at placement time. Gears that mesh always
// spin in opposite directions, so their Clockwise flags differ. ToothWidth and
// ToothDepth are shared by every gear of one fill but are carried by each gear
// so that it can be drawn on its own.
type Gear struct {
	Center     Point
	Radius     float64
	Rotation   float64
	Clockwise  bool
	ToothWidth float64
	ToothDepth float64
	// Teeth is the tooth count derived from Radius, ToothWidth and ToothDepth.
	Teeth int
	// Extendable reports whether more gears may still be attached. Every gear
	// returned by Fill has it set to false.
	Extendable bool
}

var _ Circular = Gear{}

// NewGear returns an extendable gear, deriving its tooth count. It fails if
// the tooth geometry is degenerate; see [TeethCount].
func NewGear(center Point, radius, rotation float64, clockwise bool, toothWidth, toothDepth float64) (Gear, error) {
	teeth, err := TeethCount(radius, toothWidth, toothDepth)
	if err != nil {
		return Gear{}, err
	}
	return Gear{
		Center:     center,
		Radius:     radius,
		Rotation:   rotation,
		Clockwise:  clockwise,
		ToothWidth: toothWidth,
		ToothDepth: toothDepth,
		Teeth:      teeth,
		Extendable: true,
	}, nil
}

// Circle implements Circular. The circle runs through the tips of the teeth.
func (g Gear) Circle() Circle {
	return Circle{Center: g.Center, Radius: g.Radius}
}

// RelativeSpeed returns the angular velocity multiplier that keeps the surface
// speeds of meshed gears equal: 1/Teeth, negated for anti-clockwise gears.
func (g Gear) RelativeSpeed() float64 {
	if g.Teeth == 0 {
		return math.NaN()
	}
	if g.Clockwise {
		return 1 / float64(g.Teeth)
	}
	return -1 / float64(g.Teeth)
}

// Grow returns the disk around g whose radius is larger by d. The filler uses
// it as an exclusion zone: no center of a new gear may fall inside.
func (g Gear) Grow(d float64) Circle {
	return g.Circle().Inflate(d)
}

// OuterArc returns the full circle at distance d outside g's teeth, as an arc
// starting at the top of the gear.
func (g Gear) OuterArc(d float64) Arc {
	return Arc{
		Center:     g.Center,
		Radius:     g.Radius + d,
		StartAngle: -math.Pi / 2,
		SweepAngle: tau,
	}
}

// Contains reports whether pt lies within the circle through g's tooth tips.
func (g Gear) Contains(pt Point) bool {
	return g.Circle().Contains(pt)
}
