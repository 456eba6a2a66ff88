package gears

import "math"

// Rect is an axis-aligned rectangle spanning X0..X1 and Y0..Y1. In the filler's
// y-down space, (X0, Y0) is the top left corner.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromSize returns the rectangle with its top left corner at the origin and
// the given width and height.
func NewRectFromSize(width, height float64) Rect {
	return NewRectFromPoints(Pt(0, 0), Pt(width, height))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's heigth, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle has no interior, that is, whether X0 ≥ X1 or
// Y0 ≥ Y1.
func (r Rect) IsEmpty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Contains reports whether pt lies inside r or on its border.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// ContainsCircle reports whether the whole disk of c lies inside r, allowing
// for [Epsilon].
func (r Rect) ContainsCircle(c Circular) bool {
	circle := c.Circle()
	return r.Contains(circle.Center) && approxGreaterOrEqual(r.DistanceTo(circle.Center), circle.Radius)
}

// DistanceTo returns the distance from pt to the nearest side of r. The result
// is negative if pt lies outside of r.
func (r Rect) DistanceTo(pt Point) float64 {
	return min(
		pt.X-r.X0,
		r.X1-pt.X,
		pt.Y-r.Y0,
		r.Y1-pt.Y,
	)
}

// Inset moves every side of the rectangle inwards by d. A negative d grows the
// rectangle. The result may be empty.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X0: r.X0 + d,
		Y0: r.Y0 + d,
		X1: r.X1 - d,
		Y1: r.Y1 - d,
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
//
// The logic simply applies the amount in each direction. If rectangle
// area or added dimensions are negative, this could give odd results.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Edges returns the four sides of the rectangle, clockwise in a y-down space,
// starting with the top side.
func (r Rect) Edges() []Line {
	return []Line{
		{Pt(r.X0, r.Y0), Pt(r.X1, r.Y0)},
		{Pt(r.X1, r.Y0), Pt(r.X1, r.Y1)},
		{Pt(r.X1, r.Y1), Pt(r.X0, r.Y1)},
		{Pt(r.X0, r.Y1), Pt(r.X0, r.Y0)},
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}
