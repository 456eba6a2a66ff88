// Command gearfill packs a rectangle with meshing gears and writes the result
// as JSON or as an SVG preview.
//
// The random seed comes from -seed, else from $GEARFILL_SEED, else from the
// clock; it is logged so that a fill can be reproduced.
package main

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"strconv"
	"time"

	"honnef.co/go/gears"
)

var (
	width      = flag.Float64("width", 320, "width of the rectangle to fill")
	height     = flag.Float64("height", 240, "height of the rectangle to fill")
	minRadius  = flag.Float64("min", gears.DefaultConfig.MinRadius, "minimum gear radius")
	maxRadius  = flag.Float64("max", gears.DefaultConfig.MaxRadius, "maximum gear radius")
	toothDepth = flag.Float64("tooth-depth", gears.DefaultConfig.ToothDepth, "radial height of a tooth")
	toothWidth = flag.Float64("tooth-width", gears.DefaultConfig.ToothWidth, "circumferential pitch of a tooth")
	overflow   = flag.Bool("overflow", false, "let gears reach past the rectangle by up to the maximum radius")
	retry      = flag.String("retry", "minimum", "radius retry policy: minimum or shrink")
	limit      = flag.Int("limit", 0, "stop after this many gears (0 for no limit)")
	seedFlag   = flag.Int64("seed", 0, "random seed (0 uses $GEARFILL_SEED or the clock)")
	format     = flag.String("format", "json", "output format: json or svg")
	output     = flag.String("o", "", "output file (default standard output)")
	verbose    = flag.Bool("v", false, "log every placement")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gears.SetLogger(logger)

	if err := run(logger); err != nil {
		logger.Error("gearfill failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	s, err := seed(*seedFlag)
	if err != nil {
		return err
	}
	policy, err := parseRetry(*retry)
	if err != nil {
		return err
	}

	cfg := gears.DefaultConfig.
		WithRadii(*minRadius, *maxRadius).
		WithTooth(*toothWidth, *toothDepth).
		WithOverflow(*overflow)
	opts := gears.DefaultFillOpts
	opts.Retry = policy
	opts.MaxGears = *limit
	filler := &gears.Filler{
		Rand: rand.New(rand.NewPCG(uint64(s), uint64(s)>>32)),
		Opts: opts,
	}

	canvas := gears.NewRectFromSize(*width, *height)
	start := time.Now()
	result, err := filler.FillConfig(canvas, cfg)
	if err != nil {
		return err
	}
	logger.Info("filled", "seed", s, "gears", len(result), "elapsed", time.Since(start))

	// Painter's order: gears further down are drawn last.
	slices.SortStableFunc(result, func(a, b gears.Gear) int {
		return cmp.Compare(a.Center.Y, b.Center.Y)
	})

	var w io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch *format {
	case "json":
		err = writeJSON(w, newDocument(s, canvas, cfg, result))
	case "svg":
		err = writeSVG(w, canvas, result)
	default:
		return fmt.Errorf("unknown output format %q", *format)
	}
	if err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		return f.Close()
	}
	return nil
}

// seed returns the seed to fill with: flagSeed if set, else $GEARFILL_SEED,
// else the current time.
func seed(flagSeed int64) (int64, error) {
	if flagSeed != 0 {
		return flagSeed, nil
	}
	seedStr := os.Getenv("GEARFILL_SEED")
	if seedStr == "" {
		return time.Now().UnixNano(), nil
	}
	s, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid GEARFILL_SEED value %q: %w", seedStr, err)
	}
	return s, nil
}

func parseRetry(s string) (gears.Retry, error) {
	switch s {
	case "minimum":
		return gears.RetryMinimum, nil
	case "shrink":
		return gears.RetryShrinkTooth, nil
	default:
		return 0, fmt.Errorf("unknown retry policy %q", s)
	}
}
