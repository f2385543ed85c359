// Package loader turns a directory of JSON descriptor files into a validated
// catalog. Any failure here is fatal for the game: the simulation is never
// started on a partial catalog.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"unicode/utf8"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/skii/asset"
	"github.com/lixenwraith/skii/catalog"
)

var (
	ErrMissingType     = errors.New("loader: descriptor has no type")
	ErrUnknownType     = errors.New("loader: unknown descriptor type")
	ErrMissingPlayer   = errors.New("loader: no player descriptor found")
	ErrDuplicatePlayer = errors.New("loader: more than one player descriptor")
	ErrDuplicateName   = errors.New("loader: duplicate descriptor name")
	ErrMissingField    = errors.New("loader: required property missing")
)

const (
	TypeTile   = "tile"
	TypeObject = "object"
	TypePlayer = "player"
)

// Descriptor is the on-disk shape of one asset file
type Descriptor struct {
	Type       string     `json:"type" jsonschema:"enum=tile,enum=object,enum=player"`
	Name       string     `json:"name,omitempty"`
	Properties Properties `json:"properties"`
}

// Properties is the union of per-type fields; which are required depends on Type
type Properties struct {
	ForwardFriction *float32 `json:"forward_friction,omitempty" jsonschema:"minimum=0"`
	SidewayFriction *float32 `json:"sideway_friction,omitempty" jsonschema:"minimum=0"`
	Distribution    *float32 `json:"distribution,omitempty" jsonschema:"minimum=0,exclusiveMinimum=true"`
	Hitbox          *Hitbox  `json:"hitbox,omitempty"`
	Texture         string   `json:"texture,omitempty"`
	Glyph           string   `json:"glyph,omitempty"`
	Color           string   `json:"color,omitempty"`
}

// Hitbox is an obstacle's collision footprint in cells
type Hitbox struct {
	Width  float32 `json:"width" jsonschema:"minimum=0"`
	Height float32 `json:"height" jsonschema:"minimum=0"`
}

// Definitions is the collection of descriptors read from a directory
type Definitions struct {
	Player  catalog.PlayerType
	Tiles   []catalog.TileType
	Objects []catalog.ObjectType
	// Files maps descriptor name to source file, in discovery order
	Files *orderedmap.OrderedMap[string, string]
}

// Load reads descriptors from dir, or the embedded set when dir is empty
func Load(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return LoadDefault()
	}
	return LoadDir(dir)
}

// LoadDefault builds the catalog from the embedded descriptors
func LoadDefault() (*catalog.Catalog, error) {
	return LoadFS(asset.Descriptors, asset.DescriptorDir)
}

// LoadDir builds the catalog from descriptors under a filesystem directory
func LoadDir(dir string) (*catalog.Catalog, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS builds the catalog from every *.json file in dir
func LoadFS(fsys fs.FS, dir string) (*catalog.Catalog, error) {
	defs, err := ReadFS(fsys, dir)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.New(defs.Player, defs.Tiles, defs.Objects)
	if err != nil {
		return nil, fmt.Errorf("build catalog from %s: %w", dir, err)
	}
	return cat, nil
}

// ReadFS parses descriptors without building a catalog
func ReadFS(fsys fs.FS, dir string) (*Definitions, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read descriptor dir %s: %w", dir, err)
	}

	defs := &Definitions{Files: orderedmap.NewOrderedMap[string, string]()}
	havePlayer := false

	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		file := path.Join(dir, e.Name())

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		var d Descriptor
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}

		name := d.Name
		if name == "" {
			name = e.Name()[:len(e.Name())-len(".json")]
		}
		if prev, ok := defs.Files.Get(name); ok {
			return nil, fmt.Errorf("%s: %q already defined in %s: %w", file, name, prev, ErrDuplicateName)
		}
		defs.Files.Set(name, file)

		visual := visualOf(name, d.Properties)

		switch d.Type {
		case TypeTile:
			t, err := tileOf(d.Properties, visual)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			defs.Tiles = append(defs.Tiles, t)
		case TypeObject:
			o, err := objectOf(d.Properties, visual)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			defs.Objects = append(defs.Objects, o)
		case TypePlayer:
			if havePlayer {
				return nil, fmt.Errorf("%s: %w", file, ErrDuplicatePlayer)
			}
			defs.Player = catalog.PlayerType{Visual: visual}
			havePlayer = true
		case "":
			return nil, fmt.Errorf("%s: %w", file, ErrMissingType)
		default:
			return nil, fmt.Errorf("%s: %q: %w", file, d.Type, ErrUnknownType)
		}
	}

	if !havePlayer {
		return nil, fmt.Errorf("%s: %w", dir, ErrMissingPlayer)
	}
	return defs, nil
}

func tileOf(p Properties, v catalog.Visual) (catalog.TileType, error) {
	switch {
	case p.ForwardFriction == nil:
		return catalog.TileType{}, fmt.Errorf("forward_friction: %w", ErrMissingField)
	case p.SidewayFriction == nil:
		return catalog.TileType{}, fmt.Errorf("sideway_friction: %w", ErrMissingField)
	case p.Distribution == nil:
		return catalog.TileType{}, fmt.Errorf("distribution: %w", ErrMissingField)
	}
	return catalog.TileType{
		ForwardFriction: *p.ForwardFriction,
		SidewayFriction: *p.SidewayFriction,
		Distribution:    *p.Distribution,
		Visual:          v,
	}, nil
}

func objectOf(p Properties, v catalog.Visual) (catalog.ObjectType, error) {
	switch {
	case p.Distribution == nil:
		return catalog.ObjectType{}, fmt.Errorf("distribution: %w", ErrMissingField)
	case p.Hitbox == nil:
		return catalog.ObjectType{}, fmt.Errorf("hitbox: %w", ErrMissingField)
	}
	return catalog.ObjectType{
		Distribution: *p.Distribution,
		Hitbox:       mgl32.Vec2{p.Hitbox.Width, p.Hitbox.Height},
		Visual:       v,
	}, nil
}

func visualOf(name string, p Properties) catalog.Visual {
	glyph, _ := utf8.DecodeRuneInString(p.Glyph)
	if p.Glyph == "" {
		glyph, _ = utf8.DecodeRuneInString(name)
	}
	return catalog.Visual{
		Name:    name,
		Glyph:   glyph,
		Color:   p.Color,
		Texture: p.Texture,
	}
}
