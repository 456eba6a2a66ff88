// Package gears packs rectangles with trains of interlocking gears.
//
// A fill starts with one gear at the center of the rectangle. Every further
// gear is attached to a gear placed before it, at a distance where their
// teeth interlock, and is rotated so that its teeth fall into the gaps of its
// neighbor. The result is a set of gears that could all turn together: every
// gear spins the opposite way of the gear it was attached to, at a speed
// inversely proportional to its tooth count (see [Gear.RelativeSpeed]).
//
// # Geometry
//
// The package carries a small 2D geometry kernel, just large enough for the
// placement engine: [Point], [Vec2], [Line], [Circle], [Arc] and [Rect]. The
// coordinate system has y growing downward, as on a screen. Angles are in
// radians, measured from the positive x axis toward the positive y axis.
//
// Comparisons that decide whether shapes touch are made with a tolerance of
// [Epsilon]. Two circles whose boundaries are within Epsilon of tangency are
// treated as tangent, and a point within Epsilon of a rectangle's edge is
// treated as lying on it.
//
// The central operations are [Arc.IntersectRect], which clips an arc to a
// rectangle, and [Arc.SubtractDisk], which removes the parts of an arc that
// lie inside a disk. The filler uses them to narrow the circle of possible
// centers around a gear down to the arcs where a new gear fits.
//
// # Teeth
//
// All gears of one fill share a tooth width, the pitch measured along the
// circle through the tooth tips, and a tooth depth. A gear's tooth count
// follows from its radius ([TeethCount]), and radii drawn at random are
// snapped to values that hold a whole number of teeth ([SnapRadius]).
// [MeshingAngle] computes the rotation that lets a new gear mesh with an
// existing one.
//
// # Filling
//
// [Filler] runs the placement engine. It draws all randomness from a
// [RandomSource], so that a seeded source reproduces a fill exactly. [Config]
// bundles the gear parameters and validates them; [FillOpts] holds the
// tunables of the engine itself.
//
// The package logs through log/slog. It is silent by default; use [SetLogger]
// to see what the filler is doing.
package gears
