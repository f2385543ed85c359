package input

import "github.com/gdamore/tcell/v2"

// Machine turns terminal events into intents and keeps the held steering state
type Machine struct {
	keyTable *KeyTable
	keys     *Keys
}

// NewMachine creates a machine over a key table, defaulting to DefaultKeyTable
func NewMachine(kt *KeyTable, keys *Keys) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt, keys: keys}
}

// Keys exposes the held steering state
func (m *Machine) Keys() *Keys { return m.keys }

// Process maps one event to an intent. Steering presses are recorded here;
// a terminal only autorepeats the latest key, so pressing one direction
// releases the other.
func (m *Machine) Process(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return IntentResize
	case *tcell.EventKey:
		it := m.keyTable.Lookup(ev.Key(), ev.Rune())
		switch it {
		case IntentSteerLeft:
			m.keys.Release(IntentSteerRight)
			m.keys.Press(it)
		case IntentSteerRight:
			m.keys.Release(IntentSteerLeft)
			m.keys.Press(it)
		}
		return it
	}
	return IntentNone
}
