package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/skii/catalog"
	"github.com/lixenwraith/skii/core"
)

var snow = catalog.TileType{ForwardFriction: 0.1, SidewayFriction: 2, Distribution: 1}

func movingPlayer() core.Player {
	return core.Player{
		Position:        mgl32.Vec2{3.5, 1},
		Rotation:        0.4,
		Velocity:        mgl32.Vec2{0.7, 2.3},
		AngularVelocity: 1.2,
	}
}

func TestAdvanceZeroDtIsNoop(t *testing.T) {
	p := movingPlayer()
	before := p
	Advance(&p, &snow, 0)
	if p != before {
		t.Errorf("dt=0 changed state: %+v -> %+v", before, p)
	}
}

func TestAdvanceFrictionNeverAmplifies(t *testing.T) {
	tiles := []catalog.TileType{
		snow,
		{ForwardFriction: 0.5, SidewayFriction: 0.1, Distribution: 1},
		{ForwardFriction: 0.05, SidewayFriction: 8, Distribution: 1},
	}
	rotations := []float32{0, 0.3, -1.2, math32.Pi / 2, 2.5}

	for _, tile := range tiles {
		for _, rot := range rotations {
			p := movingPlayer()
			p.Rotation = rot
			before := Speed(&p)
			Advance(&p, &tile, 1.0/60)
			if after := Speed(&p); after >= before {
				t.Errorf("tile %+v rot %.2f: speed %.5f -> %.5f, want decrease", tile, rot, before, after)
			}
		}
	}
}

func TestAdvanceForwardFrictionOnly(t *testing.T) {
	tile := catalog.TileType{ForwardFriction: 0.5, Distribution: 1}
	p := core.Player{Velocity: mgl32.Vec2{0, 2}}
	Advance(&p, &tile, 0.1)

	// v -= v * 0.5 * 0.1
	if want := float32(1.9); math32.Abs(p.Velocity.Y()-want) > 1e-6 {
		t.Errorf("velocity.y = %f, want %f", p.Velocity.Y(), want)
	}
	if want := float32(0.19); math32.Abs(p.Position.Y()-want) > 1e-6 {
		t.Errorf("position.y = %f, want %f", p.Position.Y(), want)
	}
}

func TestAdvanceSidewayFrictionActsOnLateralAxis(t *testing.T) {
	tile := catalog.TileType{SidewayFriction: 1, Distribution: 1}

	// Rotation 0: lateral axis is x, so only vx decays
	p := core.Player{Velocity: mgl32.Vec2{1, 1}}
	Advance(&p, &tile, 0.5)
	if math32.Abs(p.Velocity.X()-0.5) > 1e-6 {
		t.Errorf("vx = %f, want 0.5", p.Velocity.X())
	}
	if math32.Abs(p.Velocity.Y()-1) > 1e-6 {
		t.Errorf("vy = %f, want unchanged 1", p.Velocity.Y())
	}
}

func TestAdvanceAngularDecayHalfStrength(t *testing.T) {
	tile := catalog.TileType{SidewayFriction: 2, Distribution: 1}
	p := core.Player{AngularVelocity: 1}
	Advance(&p, &tile, 0.25)

	// w -= w * 2/2 * 0.25
	if math32.Abs(p.AngularVelocity-0.75) > 1e-6 {
		t.Errorf("angular velocity = %f, want 0.75", p.AngularVelocity)
	}
	if math32.Abs(p.Rotation-0.1875) > 1e-6 {
		t.Errorf("rotation = %f, want 0.1875", p.Rotation)
	}
}

func TestApplyGravity(t *testing.T) {
	p := core.Player{}
	ApplyGravity(&p, 1.5, 0.5)
	if p.Velocity.Y() != 0.75 || p.Velocity.X() != 0 {
		t.Errorf("velocity = %v, want (0, 0.75)", p.Velocity)
	}
}

func TestApplySteering(t *testing.T) {
	tests := []struct {
		name  string
		steer core.Steering
		omega float32
		want  float32
	}{
		{"neutral decays spin", core.SteerNeutral, 10, 10 - 10*0.2*0.1},
		{"right from rest", core.SteerRight, 0, 15 * 0.1},
		{"left from rest", core.SteerLeft, 0, -15 * 0.1},
		{"reversal", core.SteerLeft, 5, 5 + (-15-5*0.2)*0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := core.Player{AngularVelocity: tt.omega}
			ApplySteering(&p, tt.steer, 15, 0.2, 0.1)
			if math32.Abs(p.AngularVelocity-tt.want) > 1e-5 {
				t.Errorf("angular velocity = %f, want %f", p.AngularVelocity, tt.want)
			}
		})
	}
}
