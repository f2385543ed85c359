package core

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/skii/catalog"
)

// Player is the skier's kinematic state in grid units, y growing downhill
type Player struct {
	Position mgl32.Vec2
	// Rotation in radians, 0 facing straight downhill
	Rotation        float32
	Velocity        mgl32.Vec2
	AngularVelocity float32
}

// Object is a placed obstacle; position is continuous, not grid aligned
type Object struct {
	Type     catalog.ObjectID
	Position mgl32.Vec2
	Rotation float32
}

// NewObject places an unrotated obstacle
func NewObject(id catalog.ObjectID, pos mgl32.Vec2) Object {
	return Object{Type: id, Position: pos}
}

// Steering is the per-tick turn signal: -1 left, 0 neutral, +1 right
type Steering int8

const (
	SteerLeft    Steering = -1
	SteerNeutral Steering = 0
	SteerRight   Steering = 1
)

// SteeringFrom folds two held keys into a signal; opposed keys cancel
func SteeringFrom(left, right bool) Steering {
	var s Steering
	if right {
		s++
	}
	if left {
		s--
	}
	return s
}
