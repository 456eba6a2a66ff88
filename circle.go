package gears

import "math"

// Circular is implemented by shapes that have a center and a radius. [Gear],
// [Arc] and [Circle] all implement it.
type Circular interface {
	// Circle returns the full circle the shape lies on.
	Circle() Circle
}

type Circle struct {
	Center Point
	Radius float64
}

var _ Circular = Circle{}

// Circle implements Circular.
func (c Circle) Circle() Circle { return c }

// Contains reports whether pt lies in the closed disk bounded by c.
func (c Circle) Contains(pt Point) bool {
	return c.Center.DistanceSquared(pt) <= c.Radius*c.Radius
}

// Inflate returns a concentric circle whose radius is larger by d.
func (c Circle) Inflate(d float64) Circle {
	return Circle{
		Center: c.Center,
		Radius: c.Radius + d,
	}
}

// CircleIntersections returns the points where the boundaries of a and b
// cross. There are zero, one (tangent), or two of them. Concentric circles
// have no intersections, even when they coincide.
//
// Distances within [Epsilon] of tangency are treated as tangent, returning
// the single point on the line between the centers.
func CircleIntersections(a, b Circular) []Point {
	c0, c1 := a.Circle(), b.Circle()
	d := c0.Center.Distance(c1.Center)
	if d == 0 ||
		approxGreater(d, c0.Radius+c1.Radius) ||
		approxLess(d, math.Abs(c0.Radius-c1.Radius)) {
		return nil
	}

	r0sq := c0.Radius * c0.Radius
	// Distance from c0's center to the chord joining the intersections.
	along := (r0sq - c1.Radius*c1.Radius + d*d) / (2 * d)
	h2 := r0sq - along*along
	dir := c1.Center.Sub(c0.Center).Div(d)
	base := c0.Center.Translate(dir.Mul(along))
	if h2 <= 0 {
		return []Point{base}
	}
	off := Vec(dir.Y, -dir.X).Mul(math.Sqrt(h2))
	return []Point{base.Translate(off), base.Translate(off.Negate())}
}
