package gears

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointAngleTo(t *testing.T) {
	tests := []struct {
		to   Point
		want float64
	}{
		{Pt(1, 0), 0},
		{Pt(0, 1), math.Pi / 2},
		{Pt(-1, 0), math.Pi},
		{Pt(0, -1), -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := Pt(0, 0).AngleTo(tt.to); got != tt.want {
			t.Errorf("angle to %v: got %v, want %v", tt.to, got, tt.want)
		}
	}
}

func TestPointPolar(t *testing.T) {
	opt := cmpopts.EquateApprox(0, 1e-12)
	diff(t, Pt(5, 5), Pt(5, 5).Polar(0, 1))
	diff(t, Pt(15, 5), Pt(5, 5).Polar(10, 0), opt)
	diff(t, Pt(5, 15), Pt(5, 5).Polar(10, math.Pi/2), opt)
	diff(t, Pt(-5, 5), Pt(5, 5).Polar(10, math.Pi), opt)
}
