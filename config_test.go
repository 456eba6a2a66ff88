package gears

import (
	"errors"
	"math"
	"testing"
)

func TestConfigBuilders(t *testing.T) {
	got := DefaultConfig.WithRadii(5, 50).WithTooth(3, 1).WithOverflow(true)
	want := Config{
		MinRadius:  5,
		MaxRadius:  50,
		ToothWidth: 3,
		ToothDepth: 1,
		Overflow:   true,
	}
	diff(t, want, got)

	if DefaultConfig.MinRadius != 10 || DefaultConfig.Overflow {
		t.Error("builders modified DefaultConfig")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig.Validate(); err != nil {
		t.Fatalf("DefaultConfig is invalid: %s", err)
	}
	if err := DefaultConfig.WithRadii(20, 20).Validate(); err != nil {
		t.Errorf("equal radii should be valid: %s", err)
	}

	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero minimum", DefaultConfig.WithRadii(0, 32), ErrInvalidRadius},
		{"negative maximum", DefaultConfig.WithRadii(10, -1), ErrInvalidRadius},
		{"infinite maximum", DefaultConfig.WithRadii(10, math.Inf(1)), ErrInvalidRadius},
		{"NaN minimum", DefaultConfig.WithRadii(math.NaN(), 32), ErrInvalidRadius},
		{"inverted radii", DefaultConfig.WithRadii(32, 10), ErrInvalidRadius},
		{"zero tooth width", DefaultConfig.WithTooth(0, 2.5), ErrInvalidTooth},
		{"deep teeth", DefaultConfig.WithTooth(6, 10), ErrInvalidTooth},
		{"wide teeth", DefaultConfig.WithTooth(20, 2.5), ErrDegenerateTeeth},
		{"no whole tooth count", DefaultConfig.WithRadii(12.5, 13), ErrInvalidRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConfigBounds(t *testing.T) {
	r := NewRectFromSize(100, 50)
	diff(t, r, DefaultConfig.Bounds(r))
	diff(t, Rect{-32, -32, 132, 82}, DefaultConfig.WithOverflow(true).Bounds(r))
}
