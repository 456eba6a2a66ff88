package gears

import "fmt"

// Config holds the gear parameters of a fill.
type Config struct {
	MinRadius  float64
	MaxRadius  float64
	ToothDepth float64
	ToothWidth float64
	// Overflow lets gears reach MaxRadius beyond every side of the rectangle,
	// for callers that clip the result. See [Config.Bounds].
	Overflow bool
}

var DefaultConfig = Config{
	MinRadius:  10,
	MaxRadius:  32,
	ToothDepth: 2.5,
	ToothWidth: 6,
}

// WithRadii returns c with the given radius range.
func (c Config) WithRadii(minRadius, maxRadius float64) Config {
	c.MinRadius, c.MaxRadius = minRadius, maxRadius
	return c
}

func (c Config) WithTooth(width, depth float64) Config {
	c.ToothWidth, c.ToothDepth = width, depth
	return c
}

func (c Config) WithOverflow(overflow bool) Config {
	c.Overflow = overflow
	return c
}

// Validate checks the parameters that don't depend on the rectangle being
// filled.
func (c Config) Validate() error {
	if !finitePositive(c.MinRadius) || !finitePositive(c.MaxRadius) {
		return fmt.Errorf("%w: minimum %g and maximum %g must be positive", ErrInvalidRadius, c.MinRadius, c.MaxRadius)
	}
	if c.MinRadius > c.MaxRadius {
		return fmt.Errorf("%w: minimum %g exceeds maximum %g", ErrInvalidRadius, c.MinRadius, c.MaxRadius)
	}
	// The smallest radius has the fewest teeth.
	if _, err := TeethCount(c.MinRadius, c.ToothWidth, c.ToothDepth); err != nil {
		return err
	}
	if _, _, ok := teethRange(c.MinRadius, c.MaxRadius, c.ToothWidth, c.ToothDepth); !ok {
		return fmt.Errorf("%w: no gear with tooth width %g has a radius between %g and %g",
			ErrInvalidRadius, c.ToothWidth, c.MinRadius, c.MaxRadius)
	}
	return nil
}

// Bounds returns the rectangle to pass to the filler for r: r itself, or r
// grown by MaxRadius on every side in overflow mode.
func (c Config) Bounds(r Rect) Rect {
	if c.Overflow {
		return r.Inflate(c.MaxRadius, c.MaxRadius)
	}
	return r
}
