package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skii/core"
	"github.com/lixenwraith/skii/engine"
)

func newTestMachine() (*Machine, *engine.MockClock) {
	clock := engine.NewMockClock(time.Unix(0, 0))
	return NewMachine(nil, NewKeys(clock, 200*time.Millisecond)), clock
}

func TestMachineProcess(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"enter restarts", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentRestart},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"q quits", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), IntentQuit},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentSteerLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentSteerRight},
		{"vi left", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), IntentSteerLeft},
		{"wasd right", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), IntentSteerRight},
		{"mute", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMachine()
			if got := m.Process(tt.ev); got != tt.want {
				t.Errorf("Process() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMachineLatestDirectionWins(t *testing.T) {
	m, clock := newTestMachine()

	m.Process(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	clock.Advance(50 * time.Millisecond)
	m.Process(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if s := m.Keys().Steering(); s != core.SteerRight {
		t.Errorf("steering = %d, want right after switching keys", s)
	}
}

func TestLoadKeyConfig(t *testing.T) {
	kt, err := LoadKeyConfig([]byte(`
[runes]
j = "steer_left"
space = "restart"

[keys]
Up = "toggle_mute"
`))
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	if kt.Runes['j'] != IntentSteerLeft || kt.Runes[' '] != IntentRestart {
		t.Errorf("runes = %v", kt.Runes)
	}
	if kt.SpecialKeys[tcell.KeyUp] != IntentToggleMute {
		t.Errorf("keys = %v", kt.SpecialKeys)
	}

	merged := DefaultKeyTable()
	merged.Merge(kt)
	if merged.Lookup(tcell.KeyRune, 'j') != IntentSteerLeft {
		t.Error("override not merged")
	}
	if merged.Lookup(tcell.KeyLeft, 0) != IntentSteerLeft {
		t.Error("defaults lost in merge")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown action", "[runes]\nj = \"jump\""},
		{"non-string action", "[runes]\nj = 3"},
		{"multi-rune key", "[runes]\njk = \"quit\""},
		{"unknown key name", "[keys]\nHyper = \"quit\""},
		{"syntax", "[runes\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(tt.data)); err == nil {
				t.Errorf("LoadKeyConfig(%q) succeeded, want error", tt.data)
			}
		})
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for _, name := range ActionNames() {
		it, ok := ActionByName(name)
		if !ok {
			t.Fatalf("listed action %q does not resolve", name)
		}
		if it != IntentNone && ActionName(it) != name {
			t.Errorf("ActionName(%d) = %q, want %q", it, ActionName(it), name)
		}
	}
}
