package gears

import "math"

// Line represents a line segment. The filler uses lines for the sides of the
// working rectangle.
type Line struct {
	/// The line's start point.
	P0 Point
	/// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// IntersectCircle returns the points where the segment crosses the boundary of
// c. A tangent segment yields one point, a secant up to two. Points that fall
// on the infinite line through l but outside the segment are discarded.
func (l Line) IntersectCircle(c Circular) []Point {
	circle := c.Circle()
	length := l.Length()
	if length == 0 {
		return nil
	}
	dir := l.P1.Sub(l.P0).Div(length)

	// Foot of the perpendicular from the center onto the line.
	foot := l.P0.Translate(dir.Mul(circle.Center.Sub(l.P0).Dot(dir)))
	dist := foot.Distance(circle.Center)

	if dist > circle.Radius {
		return nil
	}
	if dist == circle.Radius {
		if l.spans(foot, length) {
			return []Point{foot}
		}
		return nil
	}

	offset := math.Sqrt(circle.Radius*circle.Radius - dist*dist)
	var out []Point
	for _, pt := range [2]Point{
		foot.Translate(dir.Mul(offset)),
		foot.Translate(dir.Mul(-offset)),
	} {
		if l.spans(pt, length) {
			out = append(out, pt)
		}
	}
	return out
}

// spans reports whether pt, assumed to lie on the line through l, falls within
// the segment's parametric bounds.
func (l Line) spans(pt Point, length float64) bool {
	dot := pt.Sub(l.P0).Dot(l.P1.Sub(l.P0))
	slack := Epsilon * length
	return dot >= -slack && dot <= length*length+slack
}
