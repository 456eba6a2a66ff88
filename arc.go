package gears

import (
	"slices"

	"github.com/samber/lo"
)

// Arc is the part of a circle swept from StartAngle by SweepAngle radians.
// SweepAngle is never negative; a sweep of 2π is the full circle.
//
// The filler uses arcs as the locus of candidate centers for a new gear: every
// point on the arc is at the same distance from an existing gear.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Circular = Arc{}

// Circle implements Circular.
func (a Arc) Circle() Circle {
	return Circle{Center: a.Center, Radius: a.Radius}
}

// Length returns the arc length, Radius × SweepAngle.
func (a Arc) Length() float64 {
	return a.Radius * a.SweepAngle
}

func (a Arc) EndAngle() float64 {
	return a.StartAngle + a.SweepAngle
}

// PointAt returns the point on the arc's circle at the absolute angle th.
func (a Arc) PointAt(th float64) Point {
	return a.Center.Polar(a.Radius, th)
}

func (a Arc) StartPoint() Point { return a.PointAt(a.StartAngle) }
func (a Arc) EndPoint() Point   { return a.PointAt(a.EndAngle()) }

// Midpoint returns the point halfway along the arc.
func (a Arc) Midpoint() Point {
	return a.PointAt(a.StartAngle + a.SweepAngle/2)
}

// IntersectRect returns the parts of a that lie inside r.
//
// An arc whose whole circle fits in r is returned unchanged. Otherwise the arc
// is cut wherever its circle crosses a side of r, and every piece whose
// midpoint lies inside r is kept.
func (a Arc) IntersectRect(r Rect) []Arc {
	if r.ContainsCircle(a) {
		return []Arc{a}
	}

	cuts := lo.FlatMap(r.Edges(), func(edge Line, _ int) []Point {
		return edge.IntersectCircle(a)
	})
	if len(cuts) == 0 {
		return nil
	}

	inner := r.Inset(Epsilon)
	return a.split(cuts, func(piece Arc) bool {
		return inner.Contains(piece.Midpoint())
	})
}

// SubtractDisk removes the parts of a that lie inside the closed disk bounded
// by disk's circle.
//
// If the arc doesn't cross the disk's boundary it is either returned unchanged
// or, when it lies entirely inside the disk, dropped. Containment is tested by
// sampling the arc's end points and midpoint.
func (a Arc) SubtractDisk(disk Circular) []Arc {
	c := disk.Circle()
	cuts := a.intersections(c)
	if len(cuts) == 0 {
		if a.containedIn(c) {
			return nil
		}
		return []Arc{a}
	}

	return a.split(cuts, func(piece Arc) bool {
		return !(piece.crosses(c) && piece.containedIn(c))
	})
}

// split cuts a at every point in cuts and returns the non-empty pieces for
// which keep returns true, in order of increasing angle. Points outside the
// arc's sweep are ignored.
func (a Arc) split(cuts []Point, keep func(Arc) bool) []Arc {
	sweeps := make([]float64, 0, len(cuts)+1)
	for _, pt := range cuts {
		if s := a.sweepTo(pt); s > 0 && s < a.SweepAngle {
			sweeps = append(sweeps, s)
		}
	}
	slices.Sort(sweeps)
	sweeps = append(sweeps, a.SweepAngle)

	var out []Arc
	prev := 0.0
	for _, s := range sweeps {
		piece := Arc{
			Center:     a.Center,
			Radius:     a.Radius,
			StartAngle: a.StartAngle + prev,
			SweepAngle: s - prev,
		}
		prev = s
		if piece.SweepAngle <= 0 {
			continue
		}
		if keep(piece) {
			out = append(out, piece)
		}
	}
	return out
}

// sweepTo returns the angle swept from the arc's start to reach pt, which is
// assumed to lie on the arc's circle. Points within Epsilon before the start
// yield a small negative value.
func (a Arc) sweepTo(pt Point) float64 {
	start := NormalizeAngle(a.StartAngle)
	th := a.Center.AngleTo(pt)
	for approxLess(th, start) {
		th += tau
	}
	return th - start
}

// passesThrough reports whether pt, assumed to lie on the arc's circle, is
// within the arc's sweep.
func (a Arc) passesThrough(pt Point) bool {
	if approxGreaterOrEqual(a.SweepAngle, tau) {
		return true
	}
	start := NormalizeAngle(a.StartAngle)
	th := a.Center.AngleTo(pt)
	for approxLess(th, start) {
		th += tau
	}
	return approxIn(th, start, start+a.SweepAngle)
}

// intersections returns the points where c's boundary crosses the arc itself,
// not merely its circle.
func (a Arc) intersections(c Circle) []Point {
	return lo.Filter(CircleIntersections(a, c), func(pt Point, _ int) bool {
		return a.passesThrough(pt)
	})
}

func (a Arc) crosses(c Circle) bool {
	return len(a.intersections(c)) > 0
}

func (a Arc) containedIn(c Circle) bool {
	return approxLessOrEqual(c.Center.Distance(a.StartPoint()), c.Radius) &&
		approxLessOrEqual(c.Center.Distance(a.EndPoint()), c.Radius) &&
		approxLessOrEqual(c.Center.Distance(a.Midpoint()), c.Radius)
}
