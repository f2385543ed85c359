package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec2) bool {
	return math32.Abs(a.X()-b.X()) < 1e-3 && math32.Abs(a.Y()-b.Y()) < 1e-3
}

func TestViewportProject(t *testing.T) {
	view := Viewport{Width: 720, Height: 720, Scale: 5, CellPx: 16, CameraOffset: 2}

	tests := []struct {
		name    string
		playerY float32
		p       mgl32.Vec2
		want    mgl32.Vec2
	}{
		{"skier sits offset rows above the bottom", 3, mgl32.Vec2{3.5, 3}, mgl32.Vec2{360, 560}},
		{"left course edge", 3, mgl32.Vec2{0, 3}, mgl32.Vec2{80, 560}},
		{"downhill is up", 3, mgl32.Vec2{3.5, 5}, mgl32.Vec2{360, 400}},
		{"behind the camera", 0, mgl32.Vec2{3.5, -2}, mgl32.Vec2{360, 720}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := view.Project(7, tt.playerY, tt.p); !near(got, tt.want) {
				t.Errorf("Project(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestViewportUnprojectInverts(t *testing.T) {
	views := []Viewport{
		{Width: 720, Height: 720, Scale: 5, CellPx: 16, CameraOffset: 2},
		{Width: 80, Height: 24, Scale: 1, CellPx: 1, CameraOffset: 2, AspectX: 2},
	}
	points := []mgl32.Vec2{{0, 0}, {3.5, 4.25}, {6.9, 15}, {-1, 2}}
	for i, v := range views {
		for _, p := range points {
			s := v.Project(7, 4, p)
			if back := v.Unproject(7, 4, s); !near(back, p) {
				t.Errorf("view %d: %v -> %v -> %v", i, p, s, back)
			}
		}
	}
}

func TestViewportCellSize(t *testing.T) {
	v := Viewport{Scale: 1, CellPx: 1, AspectX: 2}
	if got := v.CellSize(); got != (mgl32.Vec2{2, 1}) {
		t.Errorf("terminal cell = %v, want (2, 1)", got)
	}
	v = Viewport{Scale: 5, CellPx: 16}
	if got := v.CellSize(); got != (mgl32.Vec2{80, 80}) {
		t.Errorf("window cell = %v, want (80, 80)", got)
	}
}
