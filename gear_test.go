package gears

import (
	"errors"
	"math"
	"testing"
)

func testGear(t *testing.T) Gear {
	t.Helper()
	g, err := NewGear(Pt(4, 4), 16, math.Pi/2, false, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGear(t *testing.T) {
	want := Gear{
		Center:     Pt(4, 4),
		Radius:     16,
		Rotation:   math.Pi / 2,
		Clockwise:  false,
		ToothWidth: 4,
		ToothDepth: 4,
		Teeth:      18,
		Extendable: true,
	}
	diff(t, want, testGear(t))

	if _, err := NewGear(Pt(0, 0), 5, 0, true, 4, 4); !errors.Is(err, ErrDegenerateTeeth) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateTeeth)
	}
	if _, err := NewGear(Pt(0, 0), 16, 0, true, 0, 4); !errors.Is(err, ErrInvalidTooth) {
		t.Errorf("got error %v, want %v", err, ErrInvalidTooth)
	}
}

func TestGearRelativeSpeed(t *testing.T) {
	g := testGear(t)
	if got, want := g.RelativeSpeed(), -1.0/18; got != want {
		t.Errorf("got relative speed %g, want %g", got, want)
	}
	g.Clockwise = true
	if got, want := g.RelativeSpeed(), 1.0/18; got != want {
		t.Errorf("got relative speed %g, want %g", got, want)
	}
	if got := (Gear{}).RelativeSpeed(); !math.IsNaN(got) {
		t.Errorf("got relative speed %g for a gear without teeth, want NaN", got)
	}
}

func TestGearGrow(t *testing.T) {
	g := testGear(t)
	diff(t, Circle{Pt(4, 4), 32}, g.Grow(16))
	diff(t, Circle{Pt(4, 4), 16}, g.Circle())
}

func TestGearOuterArc(t *testing.T) {
	g := testGear(t)
	want := Arc{
		Center:     Pt(4, 4),
		Radius:     32,
		StartAngle: -math.Pi / 2,
		SweepAngle: 2 * math.Pi,
	}
	diff(t, want, g.OuterArc(16))
}

func TestGearContains(t *testing.T) {
	g := testGear(t)
	if !g.Contains(Pt(5, 5)) {
		t.Error("gear should contain (5, 5)")
	}
	if !g.Contains(Pt(20, 4)) {
		t.Error("gear should contain the tip of its teeth")
	}
	if g.Contains(Pt(21, 4)) {
		t.Error("gear shouldn't contain (21, 4)")
	}
}
