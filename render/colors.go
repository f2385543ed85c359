package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skii/catalog"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Off-course
	RgbHudText    = tcell.NewRGBColor(255, 255, 255) // Distance readout
	RgbHudBest    = tcell.NewRGBColor(180, 180, 180) // Best distance
	RgbHudBg      = tcell.NewRGBColor(0, 0, 0)
	RgbCrashText  = tcell.NewRGBColor(255, 80, 80)
	RgbTipText    = tcell.NewRGBColor(140, 190, 255)
	RgbTileGlyph  = tcell.NewRGBColor(120, 130, 150) // Tile texture on its background
)

// Palette holds precomputed styles for every catalog entry
type Palette struct {
	Base    tcell.Style
	Tiles   []tcell.Style
	Objects []tcell.Style
	Player  tcell.Style
	Hud     tcell.Style
	Best    tcell.Style
	Crash   tcell.Style
	Tip     tcell.Style
}

// NewPalette resolves catalog colors; mono drops color for plain terminals
func NewPalette(cat *catalog.Catalog, mono bool) Palette {
	p := Palette{
		Tiles:   make([]tcell.Style, cat.TileCount()),
		Objects: make([]tcell.Style, cat.ObjectCount()),
	}

	if mono {
		p.Base = tcell.StyleDefault
		for i := range p.Tiles {
			p.Tiles[i] = tcell.StyleDefault
		}
		for i := range p.Objects {
			p.Objects[i] = tcell.StyleDefault.Bold(true)
		}
		p.Player = tcell.StyleDefault.Reverse(true)
		p.Hud = tcell.StyleDefault.Bold(true)
		p.Best = tcell.StyleDefault
		p.Crash = tcell.StyleDefault.Bold(true)
		p.Tip = tcell.StyleDefault
		return p
	}

	p.Base = tcell.StyleDefault.Background(RgbBackground)
	for i := range p.Tiles {
		bg := colorOr(cat.Tile(cat.MustTile(i)).Visual.Color, RgbBackground)
		p.Tiles[i] = tcell.StyleDefault.Background(bg).Foreground(RgbTileGlyph)
	}
	for i := range p.Objects {
		p.Objects[i] = tcell.StyleDefault.Foreground(colorOr(cat.Object(cat.MustObject(i)).Visual.Color, tcell.ColorWhite)).Bold(true)
	}
	p.Player = tcell.StyleDefault.Foreground(colorOr(cat.Player().Visual.Color, tcell.ColorRed)).Bold(true)
	p.Hud = tcell.StyleDefault.Foreground(RgbHudText).Background(RgbHudBg)
	p.Best = tcell.StyleDefault.Foreground(RgbHudBest).Background(RgbHudBg)
	p.Crash = tcell.StyleDefault.Foreground(RgbCrashText).Background(RgbHudBg).Bold(true)
	p.Tip = tcell.StyleDefault.Foreground(RgbTipText).Background(RgbHudBg)
	return p
}

// colorOr parses a "#rrggbb" or named color, falling back on failure
func colorOr(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	if c := tcell.GetColor(s); c != tcell.ColorDefault {
		return c
	}
	return fallback
}

// RGBA resolves a descriptor color for image backends
func RGBA(s string, fallback color.RGBA) color.RGBA {
	c := colorOr(s, tcell.ColorDefault)
	if c == tcell.ColorDefault {
		return fallback
	}
	r, g, b := c.RGB()
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

// GetSpeedMeterColor returns the gauge color at progress 0..1: blue, green, yellow, red
func GetSpeedMeterColor(progress float64) tcell.Color {
	if progress <= 0 {
		return tcell.NewRGBColor(0, 0, 0)
	}
	if progress > 1 {
		progress = 1
	}

	switch {
	case progress < 0.333: // Blue to Green
		t := progress / 0.333
		return tcell.NewRGBColor(int32(65*(1-t)), int32(105+(200-105)*t), int32(225*(1-t)))
	case progress < 0.667: // Green to Yellow
		t := (progress - 0.333) / 0.334
		return tcell.NewRGBColor(int32(255*t), 200+int32(15*t), 0)
	default: // Yellow to Red
		t := (progress - 0.667) / 0.333
		return tcell.NewRGBColor(255, int32(215*(1-t)), 0)
	}
}
