// Package catalog holds the immutable tile, obstacle and player type tables
// consumed by the simulation. Types are addressed by opaque IDs that can only
// be obtained from a validated Catalog.
package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrEmptyTiles          = errors.New("catalog: no tile types")
	ErrEmptyObjects        = errors.New("catalog: no object types")
	ErrInvalidDistribution = errors.New("catalog: distribution must be finite and > 0")
	ErrInvalidFriction     = errors.New("catalog: friction must be finite and >= 0")
	ErrInvalidHitbox       = errors.New("catalog: hitbox must be finite and >= 0")
)

// Visual is the presentation handle of a type; the simulation never reads it
type Visual struct {
	Name    string
	Glyph   rune
	Color   string
	Texture string
}

// TileType describes a terrain surface, e.g. snow or ice
type TileType struct {
	ForwardFriction float32
	SidewayFriction float32
	Distribution    float32 // higher is more common
	Visual          Visual
}

// ObjectType describes an obstacle kind shared by every placed instance
type ObjectType struct {
	Distribution float32
	Hitbox       mgl32.Vec2 // full width and height, centered on the object
	Visual       Visual
}

// PlayerType carries the skier's appearance only
type PlayerType struct {
	Visual Visual
}

// TileID indexes a TileType; valid only for the catalog that issued it
type TileID struct{ i uint16 }

// ObjectID indexes an ObjectType; valid only for the catalog that issued it
type ObjectID struct{ i uint16 }

// Index returns the rarity rank of the tile type, 0 being the most common
func (id TileID) Index() int { return int(id.i) }

// Index returns the rarity rank of the object type, 0 being the most common
func (id ObjectID) Index() int { return int(id.i) }

// Catalog is the validated, rarity-sorted set of types
type Catalog struct {
	player  PlayerType
	tiles   []TileType
	objects []ObjectType
}

// New validates and sorts the given types; the inputs are copied
func New(player PlayerType, tiles []TileType, objects []ObjectType) (*Catalog, error) {
	if len(tiles) == 0 {
		return nil, ErrEmptyTiles
	}
	if len(objects) == 0 {
		return nil, ErrEmptyObjects
	}
	if len(tiles) > 1<<16 || len(objects) > 1<<16 {
		return nil, fmt.Errorf("catalog: too many types (%d tiles, %d objects)", len(tiles), len(objects))
	}

	for i, t := range tiles {
		if !validDistribution(t.Distribution) {
			return nil, fmt.Errorf("tile %d (%q): %w", i, t.Visual.Name, ErrInvalidDistribution)
		}
		if !nonNegative(t.ForwardFriction) || !nonNegative(t.SidewayFriction) {
			return nil, fmt.Errorf("tile %d (%q): %w", i, t.Visual.Name, ErrInvalidFriction)
		}
	}
	for i, o := range objects {
		if !validDistribution(o.Distribution) {
			return nil, fmt.Errorf("object %d (%q): %w", i, o.Visual.Name, ErrInvalidDistribution)
		}
		if !nonNegative(o.Hitbox.X()) || !nonNegative(o.Hitbox.Y()) {
			return nil, fmt.Errorf("object %d (%q): %w", i, o.Visual.Name, ErrInvalidHitbox)
		}
	}

	c := &Catalog{
		player:  player,
		tiles:   slices.Clone(tiles),
		objects: slices.Clone(objects),
	}
	// Stable so equal rarity keeps descriptor order and generation stays reproducible
	slices.SortStableFunc(c.tiles, func(a, b TileType) int {
		return cmp.Compare(RarityKey(a.Distribution), RarityKey(b.Distribution))
	})
	slices.SortStableFunc(c.objects, func(a, b ObjectType) int {
		return cmp.Compare(RarityKey(a.Distribution), RarityKey(b.Distribution))
	})
	return c, nil
}

// RarityKey is the sort key of a distribution weight: int32(1/distribution),
// saturating at math.MaxInt32 for vanishingly rare weights
func RarityKey(distribution float32) int {
	k := 1 / distribution
	switch {
	case math32.IsNaN(k):
		return 0
	case k >= math.MaxInt32:
		return math.MaxInt32
	case k <= math.MinInt32:
		return math.MinInt32
	}
	return int(int32(k))
}

func validDistribution(d float32) bool {
	return d > 0 && !math32.IsInf(d, 0) && !math32.IsNaN(d)
}

func nonNegative(v float32) bool {
	return v >= 0 && !math32.IsInf(v, 0) && !math32.IsNaN(v)
}

// --- Accessors ---

func (c *Catalog) Player() PlayerType { return c.player }

func (c *Catalog) TileCount() int { return len(c.tiles) }

func (c *Catalog) ObjectCount() int { return len(c.objects) }

// Tile returns the type referenced by id
func (c *Catalog) Tile(id TileID) *TileType { return &c.tiles[id.i] }

// Object returns the type referenced by id
func (c *Catalog) Object(id ObjectID) *ObjectType { return &c.objects[id.i] }

// TileAt converts a rarity rank into a TileID
func (c *Catalog) TileAt(i int) (TileID, bool) {
	if i < 0 || i >= len(c.tiles) {
		return TileID{}, false
	}
	return TileID{uint16(i)}, true
}

// ObjectAt converts a rarity rank into an ObjectID
func (c *Catalog) ObjectAt(i int) (ObjectID, bool) {
	if i < 0 || i >= len(c.objects) {
		return ObjectID{}, false
	}
	return ObjectID{uint16(i)}, true
}

// MustTile is TileAt for ranks already known to be in range, such as
// values drawn from Intn(TileCount())
func (c *Catalog) MustTile(i int) TileID {
	id, ok := c.TileAt(i)
	if !ok {
		panic(fmt.Sprintf("catalog: tile index %d out of range [0,%d)", i, len(c.tiles)))
	}
	return id
}

// MustObject is ObjectAt for ranks already known to be in range
func (c *Catalog) MustObject(i int) ObjectID {
	id, ok := c.ObjectAt(i)
	if !ok {
		panic(fmt.Sprintf("catalog: object index %d out of range [0,%d)", i, len(c.objects)))
	}
	return id
}

// Common returns the most common tile, used as generation fallback
func (c *Catalog) Common() TileID { return TileID{} }
