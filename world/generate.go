package world

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/skii/catalog"
	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/vmath"
)

// GenerateClear fills a width×height grid with the most common tile and drops all obstacles
func (w *World) GenerateClear(width, height int) {
	w.tiles = make([][]catalog.TileID, height)
	for y := range w.tiles {
		w.tiles[y] = make([]catalog.TileID, width)
		for x := range w.tiles[y] {
			w.tiles[y][x] = w.cat.Common()
		}
	}
	w.objects = w.objects[:0]
}

// GenerateRow appends one row at the far end of the grid.
// Each column tries up to TileCount random candidates; a candidate is
// accepted 1 in 1/distribution times. One matching neighbor halves the odds
// against it, four or more then multiply them by 5, so small patches grow and
// large ones stop spreading. Exhausting the trials commits the common tile.
func (w *World) GenerateRow() {
	width := w.Width()
	y := w.Height()
	n := w.cat.TileCount()

	row := make([]catalog.TileID, width)
	for x := 0; x < width; x++ {
		chosen := w.cat.Common()

		for trial := 0; trial < n; trial++ {
			id := w.cat.MustTile(w.rng.Intn(n))
			chance := 1 / w.cat.Tile(id).Distribution

			similar := 0
			for _, t := range w.CloseTiles(x, y) {
				if t == id {
					similar++
				}
			}
			chance = clusterChance(chance, similar, 1, 4, 5)

			if vmath.OneIn(w.rng, odds(chance)) {
				chosen = id
				break
			}
		}

		row[x] = chosen
	}

	w.tiles = append(w.tiles, row)
}

// GenerateObjects may place one obstacle per column on row rowY, centered in
// its cell. Odds follow the tile scheme with neighbors counted within the
// object radius: one nearby obstacle halves the odds against, two or more
// then multiply them by 6.
func (w *World) GenerateObjects(rowY int) {
	n := w.cat.ObjectCount()

	for x := 0; x < w.Width(); x++ {
		anchor := mgl32.Vec2{float32(x) + 0.5, float32(rowY) + 0.5}

		for trial := 0; trial < n; trial++ {
			id := w.cat.MustObject(w.rng.Intn(n))
			chance := 1 / w.cat.Object(id).Distribution

			nearby := len(w.ObjectsInRadius(w.objectRadius, anchor))
			chance = clusterChance(chance, nearby, 1, 2, 6)

			if vmath.OneIn(w.rng, odds(chance)) {
				if w.placement == PlacementReroll {
					id = w.cat.MustObject(w.rng.Intn(n))
				}
				w.objects = append(w.objects, core.NewObject(id, anchor))
				break
			}
		}
	}
}

// odds converts a "1 in chance" weight to a draw bound, saturating at the
// uint32 range; NaN and non-positive weights always hit
func odds(chance float32) uint32 {
	switch {
	case !(chance > 0):
		return 0
	case chance >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(chance)
}

// clusterChance applies the neighborhood modifiers to a "1 in chance" draw:
// at least halfAt matches halves it (rounded up), at least boostAt matches
// then multiplies it by boost.
func clusterChance(chance float32, matches, halfAt, boostAt int, boost float32) float32 {
	if matches >= halfAt {
		chance = math32.Ceil(chance / 2)
	}
	if matches >= boostAt {
		chance *= boost
	}
	return chance
}
