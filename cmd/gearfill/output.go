package main

import (
	"bufio"
	"encoding/json"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/gears"
)

type gearRecord struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Radius        float64 `json:"radius"`
	Rotation      float64 `json:"rotation"`
	Clockwise     bool    `json:"clockwise"`
	Teeth         int     `json:"teeth"`
	RelativeSpeed float64 `json:"relativeSpeed"`
	ToothWidth    float64 `json:"toothWidth"`
	ToothDepth    float64 `json:"toothDepth"`
}

type document struct {
	Seed     int64        `json:"seed"`
	Width    float64      `json:"width"`
	Height   float64      `json:"height"`
	Overflow bool         `json:"overflow"`
	Gears    []gearRecord `json:"gears"`
}

func newDocument(seed int64, canvas gears.Rect, cfg gears.Config, gs []gears.Gear) document {
	doc := document{
		Seed:     seed,
		Width:    canvas.Width(),
		Height:   canvas.Height(),
		Overflow: cfg.Overflow,
		Gears:    make([]gearRecord, 0, len(gs)),
	}
	for _, g := range gs {
		doc.Gears = append(doc.Gears, gearRecord{
			X:             g.Center.X,
			Y:             g.Center.Y,
			Radius:        g.Radius,
			Rotation:      g.Rotation,
			Clockwise:     g.Clockwise,
			Teeth:         g.Teeth,
			RelativeSpeed: g.RelativeSpeed(),
			ToothWidth:    g.ToothWidth,
			ToothDepth:    g.ToothDepth,
		})
	}
	return doc
}

func writeJSON(w io.Writer, doc document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

var (
	clockwiseColor        = colorful.Hcl(30, 0.6, 0.55).Clamped().Hex()
	counterClockwiseColor = colorful.Hcl(210, 0.6, 0.55).Clamped().Hex()
)

func gearColor(g gears.Gear) string {
	if g.Clockwise {
		return clockwiseColor
	}
	return counterClockwiseColor
}

// writeSVG draws every gear as its tip circle, a dashed root circle and a
// spoke pointing at tooth zero.
func writeSVG(w io.Writer, canvas gears.Rect, gs []gears.Gear) error {
	bw := bufio.NewWriter(w)
	s := svg.New(bw)
	s.Start(canvas.Width(), canvas.Height())
	s.Title("gearfill")
	s.Rect(0, 0, canvas.Width(), canvas.Height(), "fill:none;stroke:#cccccc")

	origin := gears.Vec(-canvas.X0, -canvas.Y0)
	for _, g := range gs {
		color := gearColor(g)
		c := g.Center.Translate(origin)
		tip := c.Polar(g.Radius, g.Rotation)

		s.Group("fill:none;stroke:" + color)
		s.Circle(c.X, c.Y, g.Radius)
		s.Circle(c.X, c.Y, g.Radius-g.ToothDepth, "stroke-dasharray:2,2")
		s.Line(c.X, c.Y, tip.X, tip.Y)
		s.Gend()
	}
	s.End()
	return bw.Flush()
}
