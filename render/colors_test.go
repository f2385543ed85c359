package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/skii/catalog"
)

func TestGetSpeedMeterColor(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		wantZero bool // true if expecting black (unfilled)
	}{
		{"Negative progress", -0.1, true},
		{"Zero progress", 0.0, true},
		{"Small progress", 0.001, false},
		{"Blue segment", 0.1, false},
		{"Green segment", 0.45, false},
		{"Yellow segment", 0.7, false},
		{"Max progress", 1.0, false},
		{"Over max progress", 1.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := GetSpeedMeterColor(tt.progress).RGB()
			if tt.wantZero {
				if r != 0 || g != 0 || b != 0 {
					t.Errorf("Expected black (0,0,0) for progress %f, got (%d,%d,%d)", tt.progress, r, g, b)
				}
			} else if r == 0 && g == 0 && b == 0 {
				t.Errorf("Expected non-black color for progress %f, got black", tt.progress)
			}
		})
	}
}

func TestGetSpeedMeterColorBoundaries(t *testing.T) {
	if c := GetSpeedMeterColor(2); c != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("overfull gauge = %v, want red", c)
	}
	// Red rises monotonically as the gauge fills
	var prevR int32 = -1
	for i := 34; i <= 100; i++ {
		r, _, _ := GetSpeedMeterColor(float64(i) / 100).RGB()
		if r < prevR {
			t.Fatalf("red channel fell at %d%%: %d -> %d", i, prevR, r)
		}
		prevR = r
	}
}

func TestRGBA(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 255}
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#d7263d", color.RGBA{0xd7, 0x26, 0x3d, 0xff}},
		{"white", color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"", fallback},
		{"not-a-color", fallback},
	}
	for _, tt := range tests {
		if got := RGBA(tt.in, fallback); got != tt.want {
			t.Errorf("RGBA(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewPaletteColors(t *testing.T) {
	cat, err := catalog.New(
		catalog.PlayerType{},
		[]catalog.TileType{
			{Distribution: 1, Visual: catalog.Visual{Name: "snow", Color: "#f4f8ff"}},
			{Distribution: 0.1, Visual: catalog.Visual{Name: "ice"}},
		},
		[]catalog.ObjectType{{Distribution: 0.1, Hitbox: mgl32.Vec2{1, 1}, Visual: catalog.Visual{Name: "rock", Color: "#5c5c66"}}},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}

	p := NewPalette(cat, false)
	if len(p.Tiles) != 2 || len(p.Objects) != 1 {
		t.Fatalf("palette sized %d/%d, want 2/1", len(p.Tiles), len(p.Objects))
	}
	if _, bg, _ := p.Tiles[0].Decompose(); bg != tcell.NewRGBColor(0xf4, 0xf8, 0xff) {
		t.Errorf("snow background = %v", bg)
	}
	if _, bg, _ := p.Tiles[1].Decompose(); bg != RgbBackground {
		t.Errorf("uncolored tile background = %v, want fallback", bg)
	}
	if fg, _, _ := p.Player.Decompose(); fg != tcell.ColorRed {
		t.Errorf("uncolored player = %v, want red", fg)
	}

	mono := NewPalette(cat, true)
	if mono.Tiles[0] != tcell.StyleDefault {
		t.Error("mono tiles must use the default style")
	}
}
