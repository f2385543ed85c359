// Package world owns the mutable simulation state: the scrolling tile grid,
// the placed obstacles and the skier. It is single threaded; renderers read
// it between ticks.
package world

import (
	"io"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/skii/catalog"
	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/physics"
	"github.com/lixenwraith/skii/vmath"
)

const (
	// DefaultGravity is the downhill acceleration in cells/s²
	DefaultGravity = 1.5
	// DefaultObjectRadius is the neighborhood radius used for obstacle clustering
	DefaultObjectRadius = 3.0
)

// PlacementMode selects which type an accepted obstacle roll places
type PlacementMode uint8

const (
	// PlacementReroll places an independently re-rolled type after acceptance
	PlacementReroll PlacementMode = iota
	// PlacementAccepted places the candidate whose roll was accepted
	PlacementAccepted
)

// Option configures a World
type Option func(*World)

// WithLogger routes world diagnostics to log
func WithLogger(log logrus.FieldLogger) Option {
	return func(w *World) { w.log = log }
}

// WithPlacement selects the obstacle placement mode
func WithPlacement(m PlacementMode) Option {
	return func(w *World) { w.placement = m }
}

// WithGravity overrides the downhill acceleration
func WithGravity(g float32) Option {
	return func(w *World) { w.gravity = g }
}

// WithObjectRadius overrides the obstacle clustering radius
func WithObjectRadius(r float32) Option {
	return func(w *World) { w.objectRadius = r }
}

// World is the simulation state of one run
type World struct {
	Player core.Player
	// RealY is the distance already scrolled past; RealY + Player.Position.Y is the score
	RealY float32

	cat     *catalog.Catalog
	tiles   [][]catalog.TileID
	objects []core.Object
	rng     vmath.Source

	log          logrus.FieldLogger
	placement    PlacementMode
	gravity      float32
	objectRadius float32
}

// New creates an empty world; call Reset before simulating
func New(cat *catalog.Catalog, rng vmath.Source, opts ...Option) *World {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	w := &World{
		Player:       core.Player{Velocity: mgl32.Vec2{0, 1}},
		cat:          cat,
		rng:          rng,
		log:          discard,
		gravity:      DefaultGravity,
		objectRadius: DefaultObjectRadius,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Reset starts a fresh run on a width×height grid
func (w *World) Reset(width, height int) {
	w.Player = core.Player{Position: mgl32.Vec2{float32(width) / 2, 0}}
	w.RealY = 0
	w.GenerateClear(width, height)

	w.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
	}).Debug("world reset")
}

// --- Accessors ---

func (w *World) Catalog() *catalog.Catalog { return w.cat }

// Width returns the number of columns
func (w *World) Width() int {
	if len(w.tiles) == 0 {
		return 0
	}
	return len(w.tiles[0])
}

// Height returns the number of rows
func (w *World) Height() int { return len(w.tiles) }

// Tile returns the tile at column x, row y
func (w *World) Tile(x, y int) catalog.TileID { return w.tiles[y][x] }

// Rows exposes the grid row-major for renderers; callers must not mutate it
func (w *World) Rows() [][]catalog.TileID { return w.tiles }

// Objects exposes placed obstacles for renderers; callers must not mutate it
func (w *World) Objects() []core.Object { return w.objects }

// AddObject places an obstacle directly, bypassing generation
func (w *World) AddObject(o core.Object) { w.objects = append(w.objects, o) }

// Distance is the total downhill distance of the run
func (w *World) Distance() float32 { return w.RealY + w.Player.Position.Y() }

// --- Queries ---

// ObjectsInRadius returns indices of obstacles whose center lies within radius of point
func (w *World) ObjectsInRadius(radius float32, point mgl32.Vec2) []int {
	var found []int
	for i := range w.objects {
		if vmath.WithinRadius(w.objects[i].Position, point, radius) {
			found = append(found, i)
		}
	}
	return found
}

// neighborhood is the Moore neighborhood scan order
var neighborhood = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
}

// CloseTiles returns the in-bounds Moore neighbors of (x, y); no wraparound
func (w *World) CloseTiles(x, y int) []catalog.TileID {
	found := make([]catalog.TileID, 0, len(neighborhood))
	width, height := w.Width(), w.Height()
	for _, d := range neighborhood {
		tx, ty := x+d[0], y+d[1]
		if tx >= 0 && ty >= 0 && tx < width && ty < height {
			found = append(found, w.tiles[ty][tx])
		}
	}
	return found
}

// --- Tick ---

// Update advances the run by dt seconds and reports whether it ended.
// The caller stops ticking once Update returns true.
func (w *World) Update(dt float32) bool {
	under := w.cat.Tile(w.tileUnderPlayer())

	physics.ApplyGravity(&w.Player, w.gravity, dt)
	physics.Advance(&w.Player, under, dt)

	return w.Collided()
}

// tileUnderPlayer is the cell one row ahead of the skier, clamped into the grid
func (w *World) tileUnderPlayer() catalog.TileID {
	x := int(math32.Floor(w.Player.Position.X()))
	y := int(math32.Floor(w.Player.Position.Y())) + 1
	return w.tiles[clamp(y, 0, w.Height()-1)][clamp(x, 0, w.Width()-1)]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
