package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/skii/world"
)

// Viewport maps world coordinates to screen units. The skier stays CameraOffset
// rows above the bottom edge; the course is centered horizontally. Downhill
// runs toward the top of the screen.
type Viewport struct {
	Width, Height int
	Scale         float32
	CellPx        float32
	CameraOffset  float32
	// AspectX stretches columns; terminals use 2 since cells are twice as tall as wide. Zero means 1.
	AspectX float32
}

func (v Viewport) unit() float32 { return v.Scale * v.CellPx }

func (v Viewport) aspect() float32 {
	if v.AspectX == 0 {
		return 1
	}
	return v.AspectX
}

// ScreenPoint maps a world position to the screen for the current frame of w
func (v Viewport) ScreenPoint(w *world.World, p mgl32.Vec2) mgl32.Vec2 {
	return v.Project(w.Width(), w.Player.Position.Y(), p)
}

// Project is ScreenPoint on raw inputs
func (v Viewport) Project(gridWidth int, playerY float32, p mgl32.Vec2) mgl32.Vec2 {
	u := v.unit()
	return mgl32.Vec2{
		(p.X()-float32(gridWidth)/2)*u*v.aspect() + float32(v.Width)/2,
		(-p.Y()+playerY-v.CameraOffset)*u + float32(v.Height),
	}
}

// Unproject inverts Project
func (v Viewport) Unproject(gridWidth int, playerY float32, s mgl32.Vec2) mgl32.Vec2 {
	u := v.unit()
	return mgl32.Vec2{
		(s.X()-float32(v.Width)/2)/(u*v.aspect()) + float32(gridWidth)/2,
		playerY - v.CameraOffset - (s.Y()-float32(v.Height))/u,
	}
}

// CellSize is the on-screen extent of one world cell
func (v Viewport) CellSize() mgl32.Vec2 {
	u := v.unit()
	return mgl32.Vec2{u * v.aspect(), u}
}
