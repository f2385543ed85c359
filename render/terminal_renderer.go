package render

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/skii/catalog"
	"github.com/lixenwraith/skii/engine"
	"github.com/lixenwraith/skii/physics"
	"github.com/lixenwraith/skii/world"
)

// HUD and dead-screen copy, shared with the windowed frontend
const (
	DistanceFormat = "%.1f meters"
	BestFormat     = "best %.1f"
	CrashFormat    = "You crashed after %.2f meters! How unfortunate!"
	CrashTip       = "ProTip: There is no need to hurry. Take it slowly."
	CrashRestart   = "Press Enter to restart"
)

const (
	hudRows         = 1
	speedGaugeWidth = 10
	// speedGaugeMax is the speed in cells/s that fills the gauge
	speedGaugeMax = 12
)

// headingGlyphs are the skier's travel directions, clockwise from straight downhill
var headingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// TerminalRenderer draws a session onto a tcell screen, one world cell per
// two terminal columns
type TerminalRenderer struct {
	screen       tcell.Screen
	cat          *catalog.Catalog
	palette      Palette
	cameraOffset float32
}

// NewTerminalRenderer creates a renderer for the given catalog
func NewTerminalRenderer(screen tcell.Screen, cat *catalog.Catalog, cameraOffset float32, mono bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen:       screen,
		cat:          cat,
		palette:      NewPalette(cat, mono),
		cameraOffset: cameraOffset,
	}
}

// Viewport is the current screen mapping
func (r *TerminalRenderer) Viewport() Viewport {
	w, h := r.screen.Size()
	return Viewport{
		Width:        w,
		Height:       h,
		Scale:        1,
		CellPx:       1,
		CameraOffset: r.cameraOffset,
		AspectX:      2,
	}
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(s *engine.Session) {
	r.screen.Fill(' ', r.palette.Base)
	view := r.Viewport()

	r.drawTiles(s.World, view)
	r.drawObjects(s.World, view)
	r.drawPlayer(s.World, view)
	r.drawHud(s, view)
	if s.Dead {
		r.drawCrash(s, view)
	}

	r.screen.Show()
}

// drawTiles samples the grid at every screen cell center
func (r *TerminalRenderer) drawTiles(w *world.World, view Viewport) {
	py := w.Player.Position.Y()
	gw, gh := w.Width(), w.Height()

	for sy := hudRows; sy < view.Height; sy++ {
		for sx := 0; sx < view.Width; sx++ {
			p := view.Unproject(gw, py, mgl32.Vec2{float32(sx) + 0.5, float32(sy) + 0.5})
			tx, ty := int(math32.Floor(p.X())), int(math32.Floor(p.Y()))
			if tx < 0 || ty < 0 || tx >= gw || ty >= gh {
				continue
			}
			id := w.Tile(tx, ty)
			r.screen.SetContent(sx, sy, r.cat.Tile(id).Visual.Glyph, nil, r.palette.Tiles[id.Index()])
		}
	}
}

func (r *TerminalRenderer) drawObjects(w *world.World, view Viewport) {
	py := w.Player.Position.Y()
	for _, o := range w.Objects() {
		sp := view.Project(w.Width(), py, o.Position)
		r.overlay(sp, r.cat.Object(o.Type).Visual.Glyph, r.palette.Objects[o.Type.Index()])
	}
}

func (r *TerminalRenderer) drawPlayer(w *world.World, view Viewport) {
	sp := view.Project(w.Width(), w.Player.Position.Y(), w.Player.Position)
	r.overlay(sp, PlayerGlyph(w.Player.Rotation), r.palette.Player)
}

// overlay draws a glyph at a screen point, keeping the background already there
func (r *TerminalRenderer) overlay(sp mgl32.Vec2, glyph rune, style tcell.Style) {
	x, y := int(math32.Floor(sp.X())), int(math32.Floor(sp.Y()))
	w, h := r.screen.Size()
	if x < 0 || y < hudRows || x >= w || y >= h {
		return
	}
	_, _, under, _ := r.screen.GetContent(x, y)
	fg, _, attrs := style.Decompose()
	r.screen.SetContent(x, y, glyph, nil, under.Foreground(fg).Attributes(attrs))
}

func (r *TerminalRenderer) drawHud(s *engine.Session, view Viewport) {
	for x := 0; x < view.Width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, r.palette.Hud)
	}

	dist := fmt.Sprintf(DistanceFormat, s.Distance())
	r.drawText(1, 0, dist, r.palette.Hud)

	if s.Best() > 0 {
		best := fmt.Sprintf(BestFormat, s.Best())
		r.drawText(view.Width-len([]rune(best))-1, 0, best, r.palette.Best)
	}

	// Speed gauge between the readouts, when there is room
	start := len(dist) + 3
	if start+speedGaugeWidth < view.Width-12 {
		filled := int(physics.Speed(&s.World.Player) / speedGaugeMax * speedGaugeWidth)
		for i := 0; i < speedGaugeWidth; i++ {
			style := r.palette.Hud.Foreground(tcell.NewRGBColor(40, 40, 40))
			if i < filled {
				style = r.palette.Hud.Foreground(GetSpeedMeterColor(float64(i+1) / speedGaugeWidth))
			}
			r.screen.SetContent(start+i, 0, '▮', nil, style)
		}
	}
}

func (r *TerminalRenderer) drawCrash(s *engine.Session, view Viewport) {
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{fmt.Sprintf(CrashFormat, s.Distance()), r.palette.Crash},
		{CrashTip, r.palette.Tip},
		{CrashRestart, r.palette.Hud},
	}
	top := view.Height/2 - len(lines)/2
	for i, l := range lines {
		r.drawText((view.Width-len([]rune(l.text)))/2, top+i, l.text, l.style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// PlayerGlyph picks the arrow closest to the skier's direction of travel
func PlayerGlyph(rotation float32) rune {
	turn := math32.Mod(rotation, 2*math32.Pi)
	if turn < 0 {
		turn += 2 * math32.Pi
	}
	sector := int(math32.Floor(turn/(math32.Pi/4)+0.5)) % len(headingGlyphs)
	return headingGlyphs[sector]
}
