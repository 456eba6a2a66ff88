package gears

import "errors"

var (
	// ErrInvalidRadius reports non-positive or non-finite radii, or a minimum
	// radius above the maximum.
	ErrInvalidRadius = errors.New("gears: invalid gear radius")
	// ErrInvalidTooth reports non-positive or non-finite tooth dimensions, or a
	// radius that doesn't exceed the tooth depth.
	ErrInvalidTooth = errors.New("gears: invalid tooth dimensions")
	// ErrDegenerateTeeth reports tooth geometry that fits fewer than three teeth.
	ErrDegenerateTeeth = errors.New("gears: degenerate tooth geometry")
	// ErrRectTooSmall reports a rectangle that can't hold a single gear.
	ErrRectTooSmall = errors.New("gears: rectangle too small")
)
