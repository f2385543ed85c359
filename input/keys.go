package input

import (
	"time"

	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/engine"
)

// Keys tracks which steering directions are held. Terminals report presses
// only, so a press counts as held for a hold window that autorepeat keeps
// refreshing. Frontends with real key-up events call Release.
type Keys struct {
	clock       engine.Clock
	hold        time.Duration
	left, right time.Time
}

// NewKeys creates a tracker whose presses expire after hold
func NewKeys(clock engine.Clock, hold time.Duration) *Keys {
	return &Keys{clock: clock, hold: hold}
}

// Press marks a direction held as of now
func (k *Keys) Press(it IntentType) {
	switch it {
	case IntentSteerLeft:
		k.left = k.clock.Now()
	case IntentSteerRight:
		k.right = k.clock.Now()
	}
}

// Release drops a direction immediately
func (k *Keys) Release(it IntentType) {
	switch it {
	case IntentSteerLeft:
		k.left = time.Time{}
	case IntentSteerRight:
		k.right = time.Time{}
	}
}

// Clear releases both directions
func (k *Keys) Clear() {
	k.left, k.right = time.Time{}, time.Time{}
}

// Steering folds the held directions into one signal; holding both cancels
func (k *Keys) Steering() core.Steering {
	now := k.clock.Now()
	return core.SteeringFrom(k.held(k.left, now), k.held(k.right, now))
}

func (k *Keys) held(pressed, now time.Time) bool {
	return !pressed.IsZero() && now.Sub(pressed) < k.hold
}
