package gears

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/samber/lo"
)

// Retry selects what the filler does when a gear of the drawn radius doesn't
// fit next to its origin.
type Retry int

const (
	// Retry once with the smallest radius.
	RetryMinimum Retry = iota
	// Remove one tooth at a time until the radius would drop below the
	// minimum.
	RetryShrinkTooth
)

// FillOpts holds the tunables of the placement engine.
type FillOpts struct {
	// MeshOverlap is the fraction of the tooth depth by which a new gear is
	// pulled toward its origin so that their teeth interlock.
	MeshOverlap float64
	// CoRotatingMargin and CounterRotatingMargin are added to the exclusion
	// disk of a placed gear that spins the same, respectively the opposite,
	// way as the origin.
	CoRotatingMargin      float64
	CounterRotatingMargin float64
	// MinArcLength is the total placement arc an origin must have left to be
	// tried again.
	MinArcLength float64
	Retry        Retry
	// MaxGears stops the fill once that many gears have been placed. Zero
	// means no limit.
	MaxGears int
}

var DefaultFillOpts = FillOpts{
	MeshOverlap:           0.75,
	CoRotatingMargin:      1,
	CounterRotatingMargin: 0,
	MinArcLength:          0.01,
	Retry:                 RetryMinimum,
}

// Filler packs rectangles with trains of meshing gears.
//
// A Filler holds no state between fills. Concurrent calls to Fill are safe as
// long as Rand is safe for concurrent use or is nil.
type Filler struct {
	// Rand provides all randomness: gear sizes and positions. If nil, every
	// fill uses a freshly seeded generator.
	Rand RandomSource
	Opts FillOpts
	// Logger overrides the package logger set with SetLogger.
	Logger *slog.Logger
}

// NewFiller returns a filler that draws from rnd and uses DefaultFillOpts.
func NewFiller(rnd RandomSource) *Filler {
	return &Filler{
		Rand: rnd,
		Opts: DefaultFillOpts,
	}
}

// FillConfig fills cfg.Bounds(r) using the gear parameters in cfg.
func (f *Filler) FillConfig(r Rect, cfg Config) ([]Gear, error) {
	return f.Fill(cfg.Bounds(r), cfg.MinRadius, cfg.MaxRadius, cfg.ToothDepth, cfg.ToothWidth)
}

// Fill packs r with gears whose radii lie between minRadius and maxRadius,
// snapped to whole tooth counts. The first gear sits at the center of r;
// every further gear meshes with a gear placed before it. No gear reaches
// outside r, and no two gears overlap beyond the interlocking of their teeth.
//
// The gears are returned in placement order. Fill fails only for parameters
// that can't produce a single valid gear.
func (f *Filler) Fill(r Rect, minRadius, maxRadius, toothDepth, toothWidth float64) ([]Gear, error) {
	cfg := Config{
		MinRadius:  minRadius,
		MaxRadius:  maxRadius,
		ToothDepth: toothDepth,
		ToothWidth: toothWidth,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r.IsNaN() || r.IsInf() || r.IsEmpty() {
		return nil, fmt.Errorf("%w: %v", ErrRectTooSmall, r)
	}

	smallest := SnapRadius(minRadius, minRadius, maxRadius, toothWidth, toothDepth)
	if !fits(r, smallest) {
		return nil, fmt.Errorf("%w: %gx%g can't hold a gear of radius %g",
			ErrRectTooSmall, r.Width(), r.Height(), smallest)
	}

	rnd := f.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log := f.Logger
	if log == nil {
		log = Logger()
	}

	fl := &filling{
		rect:     r,
		cfg:      cfg,
		opts:     f.Opts,
		rnd:      rnd,
		log:      log,
		smallest: smallest,
	}
	return fl.run(), nil
}

// fits reports whether a gear of the given radius fits in r at all.
func fits(r Rect, radius float64) bool {
	in := r.Inset(radius)
	return in.X0 <= in.X1 && in.Y0 <= in.Y1
}

// filling is the state of a single fill.
type filling struct {
	rect     Rect
	cfg      Config
	opts     FillOpts
	rnd      RandomSource
	log      *slog.Logger
	smallest float64

	gears []Gear
	// pending holds the indices of extendable gears, oldest first.
	pending  []int
	attempts int
}

func (fl *filling) run() []Gear {
	fl.gears = append(fl.gears, fl.seed())
	fl.pending = append(fl.pending, 0)

	for len(fl.pending) > 0 {
		origin := fl.pending[0]
		fl.pending = fl.pending[1:]

		for !fl.full() {
			added, more := fl.addGear(origin)
			if added {
				fl.pending = append(fl.pending, len(fl.gears)-1)
			}
			if !more {
				break
			}
		}
		fl.gears[origin].Extendable = false
		fl.log.Debug("gear retired", "index", origin)

		if fl.full() {
			fl.log.Debug("gear limit reached", "limit", fl.opts.MaxGears)
			for _, i := range fl.pending {
				fl.gears[i].Extendable = false
			}
			fl.pending = nil
		}
	}

	fl.log.Info("fill complete", "gears", len(fl.gears), "attempts", fl.attempts)
	return fl.gears
}

func (fl *filling) full() bool {
	return fl.opts.MaxGears > 0 && len(fl.gears) >= fl.opts.MaxGears
}

// seed returns the first gear, centered in the rectangle.
func (fl *filling) seed() Gear {
	radius := fl.randomRadius()
	if !fits(fl.rect, radius) {
		radius = fl.smallest
	}
	g := fl.newGear(fl.rect.Center(), radius, 0, true)
	fl.log.Debug("gear placed", "index", 0, "radius", radius, "x", g.Center.X, "y", g.Center.Y)
	return g
}

// addGear tries to attach one new gear to the gear at index origin. It reports
// whether a gear was added and whether the origin has room left for another.
func (fl *filling) addGear(origin int) (added, more bool) {
	og := fl.gears[origin]
	position := fl.draw()
	radius := fl.randomRadius()

	for {
		fl.attempts++
		arcs := fl.validArcs(origin, fl.candidateArcs(og, radius), radius)
		if center, ok := pointOnArcs(arcs, position); ok {
			g := fl.newGear(center, radius, MeshingAngle(og, center, radius), !og.Clockwise)
			fl.gears = append(fl.gears, g)
			fl.log.Debug("gear placed",
				"index", len(fl.gears)-1,
				"origin", origin,
				"radius", radius,
				"x", center.X,
				"y", center.Y)
			return true, fl.hasRoom(origin)
		}

		next, ok := fl.retryRadius(radius)
		if !ok {
			return false, false
		}
		fl.log.Debug("radius retry", "origin", origin, "from", radius, "to", next)
		radius = next
	}
}

// retryRadius returns the radius to try after radius didn't fit.
func (fl *filling) retryRadius(radius float64) (float64, bool) {
	switch fl.opts.Retry {
	case RetryMinimum:
		if approxGreater(radius, fl.smallest) {
			return fl.smallest, true
		}
		return 0, false
	case RetryShrinkTooth:
		next := shrinkTooth(radius, fl.cfg.ToothWidth, fl.cfg.ToothDepth)
		if next >= fl.cfg.MinRadius && next < radius {
			return next, true
		}
		return 0, false
	default:
		panic(fmt.Sprintf("invalid Retry %d", fl.opts.Retry))
	}
}

// hasRoom reports whether a gear of the smallest radius could still be
// attached to the gear at index origin.
func (fl *filling) hasRoom(origin int) bool {
	og := fl.gears[origin]
	arcs := fl.validArcs(origin, fl.candidateArcs(og, fl.smallest), fl.smallest)
	return lo.SomeBy(arcs, func(a Arc) bool {
		return a.Length() >= fl.opts.MinArcLength
	})
}

// candidateArcs returns the centers at which a gear of the given radius meshes
// with origin and stays inside the rectangle.
func (fl *filling) candidateArcs(origin Gear, radius float64) []Arc {
	bounds := fl.rect.Inset(radius)
	if bounds.IsEmpty() {
		return nil
	}
	return origin.OuterArc(radius - fl.opts.MeshOverlap*origin.ToothDepth).IntersectRect(bounds)
}

// validArcs removes from arcs the centers at which a gear of the given radius
// would collide with any placed gear other than the origin.
func (fl *filling) validArcs(origin int, arcs []Arc, radius float64) []Arc {
	og := fl.gears[origin]
	return lo.Reduce(fl.gears, func(acc []Arc, g Gear, i int) []Arc {
		if i == origin || len(acc) == 0 {
			return acc
		}
		margin := fl.opts.CounterRotatingMargin
		if g.Clockwise == og.Clockwise {
			margin = fl.opts.CoRotatingMargin
		}
		disk := g.Grow(radius + margin)
		return lo.FlatMap(acc, func(a Arc, _ int) []Arc {
			return a.SubtractDisk(disk)
		})
	}, arcs)
}

func (fl *filling) newGear(center Point, radius, rotation float64, clockwise bool) Gear {
	return Gear{
		Center:     center,
		Radius:     radius,
		Rotation:   rotation,
		Clockwise:  clockwise,
		ToothWidth: fl.cfg.ToothWidth,
		ToothDepth: fl.cfg.ToothDepth,
		Teeth:      teethCount(radius, fl.cfg.ToothWidth, fl.cfg.ToothDepth),
		Extendable: true,
	}
}

func (fl *filling) randomRadius() float64 {
	seed := fl.draw()*(fl.cfg.MaxRadius-fl.cfg.MinRadius) + fl.cfg.MinRadius
	return SnapRadius(seed, fl.cfg.MinRadius, fl.cfg.MaxRadius, fl.cfg.ToothWidth, fl.cfg.ToothDepth)
}

func (fl *filling) draw() float64 {
	v := fl.rnd.Float64()
	if !(v >= 0 && v < 1) {
		panic(fmt.Sprintf("random source returned %g, outside of [0, 1)", v))
	}
	return v
}

// pointOnArcs returns the point at the given fraction of the combined length of
// arcs. It reports false if the arcs have no length.
func pointOnArcs(arcs []Arc, position float64) (Point, bool) {
	arcs = lo.Filter(arcs, func(a Arc, _ int) bool { return a.Length() > 0 })
	total := lo.SumBy(arcs, Arc.Length)
	if total <= 0 || math.IsNaN(total) {
		return Point{}, false
	}

	remaining := position * total
	for _, a := range arcs {
		length := a.Length()
		if remaining <= length {
			return a.PointAt(a.StartAngle + remaining/length*a.SweepAngle), true
		}
		remaining -= length
	}
	// Rounding in the running subtraction.
	if remaining <= Epsilon {
		last := arcs[len(arcs)-1]
		return last.EndPoint(), true
	}
	panic(fmt.Sprintf("point %g lies outside of all arcs (total length %g)", position*total, total))
}
