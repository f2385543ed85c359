package main

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/skii/audio"
	"github.com/lixenwraith/skii/engine"
	"github.com/lixenwraith/skii/input"
	"github.com/lixenwraith/skii/render"
)

var (
	colorBackground = color.RGBA{26, 27, 38, 255}
	colorHud        = color.RGBA{255, 255, 255, 255}
	colorCrash      = color.RGBA{255, 80, 80, 255}
	colorTip        = color.RGBA{140, 190, 255, 255}
)

const (
	hudMargin = 8
	lineGap   = 4
)

// Game adapts a session to ebiten. ebiten's fixed TPS matches the tick rate,
// so each Update is exactly one simulation tick.
type Game struct {
	session  *engine.Session
	sprites  *Sprites
	bindings Bindings
	sound    *audio.SoundManager
	view     render.Viewport
	face     text.Face
	log      logrus.FieldLogger
}

func NewGame(session *engine.Session, sprites *Sprites, bindings Bindings, sound *audio.SoundManager, view render.Viewport, log logrus.FieldLogger) *Game {
	return &Game{
		session:  session,
		sprites:  sprites,
		bindings: bindings,
		sound:    sound,
		view:     view,
		face:     text.NewGoXFace(bitmapfont.Face),
		log:      log,
	}
}

func (g *Game) Update() error {
	switch {
	case g.bindings.Pressed(input.IntentQuit):
		g.log.WithFields(logrus.Fields{
			"runs": g.session.Runs(),
			"best": g.session.Best(),
		}).Info("quit")
		return ebiten.Termination
	case g.bindings.Pressed(input.IntentToggleMute):
		g.sound.ToggleMute()
	case g.bindings.Pressed(input.IntentRestart):
		if g.session.Restart() {
			g.log.WithField("run", g.session.Runs()).Debug("restart")
		}
	}

	g.session.Tick(g.bindings.Steering())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	w := g.session.World

	// A tile spans [x,x+1) x [y,y+1); downhill is up, so its top-left is (x, y+1)
	for y, row := range w.Rows() {
		for x, id := range row {
			g.drawCell(screen, g.sprites.Tiles[id.Index()], mgl32.Vec2{float32(x), float32(y + 1)}, 0)
		}
	}
	for _, o := range w.Objects() {
		g.drawCell(screen, g.sprites.Objects[o.Type.Index()], o.Position.Add(mgl32.Vec2{-0.5, 0.5}), 0)
	}
	p := w.Player
	g.drawCell(screen, g.sprites.Player, p.Position.Add(mgl32.Vec2{-0.5, 0.5}), float64(p.Rotation))

	g.drawText(screen, fmt.Sprintf(render.DistanceFormat, g.session.Distance()), hudMargin, hudMargin, colorHud)
	if g.session.Best() > 0 {
		best := fmt.Sprintf(render.BestFormat, g.session.Best())
		g.drawText(screen, best, g.view.Width-hudMargin-int(text.Advance(best, g.face)), hudMargin, colorHud)
	}

	if g.session.Dead {
		g.drawCrash(screen)
	}
}

// drawCell scales img to one world cell with its top-left at world point tl,
// rotated clockwise about the cell center
func (g *Game) drawCell(screen, img *ebiten.Image, tl mgl32.Vec2, rotation float64) {
	w := g.session.World
	sp := g.view.ScreenPoint(w, tl)
	cell := g.view.CellSize()
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bw)/2, -float64(bh)/2) // Center rotation
	op.GeoM.Rotate(rotation)
	op.GeoM.Scale(float64(cell.X())/float64(bw), float64(cell.Y())/float64(bh))
	op.GeoM.Translate(float64(sp.X()+cell.X()/2), float64(sp.Y()+cell.Y()/2))
	screen.DrawImage(img, op)
}

func (g *Game) drawCrash(screen *ebiten.Image) {
	lines := []struct {
		text string
		clr  color.RGBA
	}{
		{fmt.Sprintf(render.CrashFormat, g.session.Distance()), colorCrash},
		{render.CrashTip, colorTip},
		{render.CrashRestart, colorHud},
	}
	lineHeight := int(g.face.Metrics().HAscent+g.face.Metrics().HDescent) + lineGap
	top := g.view.Height/2 - len(lines)*lineHeight/2
	for i, l := range lines {
		x := (g.view.Width - int(text.Advance(l.text, g.face))) / 2
		g.drawText(screen, l.text, x, top+i*lineHeight, l.clr)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y int, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.Width, g.view.Height
}
