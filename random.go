package gears

// RandomSource yields uniformly distributed numbers in [0, 1). Both
// *math/rand.Rand and *math/rand/v2.Rand implement it.
type RandomSource interface {
	Float64() float64
}

// RandomFunc adapts a function to [RandomSource].
type RandomFunc func() float64

func (f RandomFunc) Float64() float64 { return f() }
