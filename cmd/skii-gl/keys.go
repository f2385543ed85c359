package main

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/input"
)

// Bindings maps window keys to intents. Rune bindings from the key table
// are carried over when ebiten has a key of the same name.
type Bindings map[input.IntentType][]ebiten.Key

// NewBindings starts from the window defaults and adds kt's rune bindings
func NewBindings(kt *input.KeyTable) Bindings {
	b := Bindings{
		input.IntentSteerLeft:  {ebiten.KeyArrowLeft},
		input.IntentSteerRight: {ebiten.KeyArrowRight},
		input.IntentRestart:    {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		input.IntentToggleMute: {},
		input.IntentQuit:       {ebiten.KeyEscape},
	}
	for r, it := range kt.Runes {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(strings.ToUpper(string(r)))); err != nil {
			continue
		}
		b[it] = append(b[it], k)
	}
	return b
}

// Held reports whether any key bound to it is down
func (b Bindings) Held(it input.IntentType) bool {
	for _, k := range b[it] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Pressed reports whether a key bound to it went down this tick
func (b Bindings) Pressed(it input.IntentType) bool {
	for _, k := range b[it] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Steering reads the held steering keys; a window gets real key-up events
func (b Bindings) Steering() core.Steering {
	return core.SteeringFrom(b.Held(input.IntentSteerLeft), b.Held(input.IntentSteerRight))
}
