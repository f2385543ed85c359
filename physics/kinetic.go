package physics

import (
	"github.com/lixenwraith/skii/catalog"
	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/vmath"
)

// Advance integrates the skier one step over the tile it occupies.
// Both friction terms are independent exponential decays: forward friction
// damps the whole velocity, sideway friction damps only the component along
// the lateral axis and, at half strength, the angular velocity.
// dt == 0 leaves the player untouched.
func Advance(p *core.Player, tile *catalog.TileType, dt float32) {
	axis := vmath.LateralAxis(p.Rotation)
	sideways := axis.Mul(p.Velocity.Dot(axis))

	p.Velocity = p.Velocity.Sub(p.Velocity.Mul(tile.ForwardFriction * dt))
	p.Velocity = p.Velocity.Sub(sideways.Mul(tile.SidewayFriction * dt))
	p.AngularVelocity -= p.AngularVelocity * tile.SidewayFriction / 2 * dt

	p.Position = p.Position.Add(p.Velocity.Mul(dt))
	p.Rotation += p.AngularVelocity * dt
}

// ApplyGravity accelerates the skier downhill
func ApplyGravity(p *core.Player, accel, dt float32) {
	p.Velocity[1] += accel * dt
}

// ApplySteering injects turning torque. The damping term bleeds the current
// spin, so reversing direction turns faster than holding a turn.
func ApplySteering(p *core.Player, s core.Steering, turnRate, damping, dt float32) {
	p.AngularVelocity += (float32(s)*turnRate - p.AngularVelocity*damping) * dt
}

// Speed returns the velocity magnitude
func Speed(p *core.Player) float32 {
	return p.Velocity.Len()
}
