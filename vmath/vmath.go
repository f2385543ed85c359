package vmath

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/zeebo/xxh3"
)

// --- Randomness ---

// Source is the random capability threaded through terrain generation
type Source interface {
	// Intn returns a uniform value in [0, n); n <= 0 yields 0
	Intn(n int) int
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// OneIn draws a "1 in n" weighted boolean: n <= 1 always succeeds
func OneIn(rng Source, n uint32) bool {
	if n <= 1 {
		return true
	}
	return rng.Intn(int(n)) == 0
}

// SeedFromString hashes a textual seed; empty strings fall back to wall time
func SeedFromString(s string) uint64 {
	if s == "" {
		return uint64(time.Now().UnixNano())
	}
	return xxh3.HashString(s)
}

// --- Geometry ---

// LateralAxis returns the skier's sideways unit axis for rotation r, (-cos r, sin r)
func LateralAxis(r float32) mgl32.Vec2 {
	return mgl32.Vec2{-math32.Cos(r), math32.Sin(r)}
}

// WithinRadius reports whether a and b are at most radius apart
func WithinRadius(a, b mgl32.Vec2, radius float32) bool {
	return a.Sub(b).Len() <= radius
}

// InBox reports inclusive containment of p in the box center ± size/2
func InBox(p, center, size mgl32.Vec2) bool {
	half := size.Mul(0.5)
	min := center.Sub(half)
	max := center.Add(half)
	return p.X() >= min.X() && p.X() <= max.X() &&
		p.Y() >= min.Y() && p.Y() <= max.Y()
}
