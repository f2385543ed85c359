package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Escape)
	SpecialKeys map[tcell.Key]IntentType
	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default bindings: arrows, vi and wasd steering
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyEnter:  IntentRestart,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyLeft:   IntentSteerLeft,
			tcell.KeyRight:  IntentSteerRight,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'm': IntentToggleMute,
			'h': IntentSteerLeft,
			'a': IntentSteerLeft,
			'l': IntentSteerRight,
			'd': IntentSteerRight,
		},
	}
}

// Lookup resolves a key event against the table
func (kt *KeyTable) Lookup(key tcell.Key, r rune) IntentType {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}

// Merge overlays the non-empty bindings of other onto kt
func (kt *KeyTable) Merge(other *KeyTable) {
	if other == nil {
		return
	}
	for k, v := range other.SpecialKeys {
		kt.SpecialKeys[k] = v
	}
	for r, v := range other.Runes {
		kt.Runes[r] = v
	}
}
