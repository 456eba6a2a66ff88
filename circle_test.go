package gears

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCircleContains(t *testing.T) {
	c := Circle{Pt(5, 5), 5}
	for _, pt := range []Point{Pt(5, 5), Pt(10, 5), Pt(5, 0), Pt(8, 8)} {
		if !c.Contains(pt) {
			t.Errorf("%v should contain %v", c, pt)
		}
	}
	for _, pt := range []Point{Pt(10.01, 5), Pt(9, 9), Pt(-1, 5)} {
		if c.Contains(pt) {
			t.Errorf("%v shouldn't contain %v", c, pt)
		}
	}
}

func TestCircleInflate(t *testing.T) {
	diff(t, Circle{Pt(1, 2), 7}, Circle{Pt(1, 2), 3}.Inflate(4))
	diff(t, Circle{Pt(1, 2), 1}, Circle{Pt(1, 2), 3}.Inflate(-2))
}

func TestCircleIntersections(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-3)
	a := Circle{Pt(0, 0), 5}

	tests := []struct {
		name string
		b    Circle
		want []Point
	}{
		{"crossing", Circle{Pt(8, 0), 5}, []Point{Pt(4, -3), Pt(4, 3)}},
		{"crossing vertically", Circle{Pt(0, 8), 5}, []Point{Pt(3, 4), Pt(-3, 4)}},
		{"external tangent", Circle{Pt(10, 0), 5}, []Point{Pt(5, 0)}},
		{"nearly tangent", Circle{Pt(10.00005, 0), 5}, []Point{Pt(5, 0)}},
		{"internal tangent", Circle{Pt(3, 0), 2}, []Point{Pt(5, 0)}},
		{"disjoint", Circle{Pt(20, 0), 5}, nil},
		{"nested", Circle{Pt(1, 0), 2}, nil},
		{"concentric", Circle{Pt(0, 0), 3}, nil},
		{"coincident", a, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleIntersections(a, tt.b)
			diff(t, tt.want, got, opt)
			for _, pt := range got {
				if d := pt.Distance(a.Center); !approxEqual(d, a.Radius) {
					t.Errorf("%v is %g away from the first center, want %g", pt, d, a.Radius)
				}
			}
		})
	}
}

func TestCircleIntersectionsCircular(t *testing.T) {
	// Gears and arcs intersect by their circles.
	g := Gear{Center: Pt(0, 0), Radius: 5}
	arc := Arc{Center: Pt(8, 0), Radius: 5, SweepAngle: 0.1}
	diff(t, []Point{Pt(4, -3), Pt(4, 3)}, CircleIntersections(g, arc), cmpopts.EquateApprox(0, 1e-9))
}
