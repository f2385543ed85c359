package input

import "sort"

// actionNames maps keymap action strings to intents
var actionNames = map[string]IntentType{
	"quit":        IntentQuit,
	"restart":     IntentRestart,
	"toggle_mute": IntentToggleMute,
	"steer_left":  IntentSteerLeft,
	"steer_right": IntentSteerRight,
	"none":        IntentNone,
}

// ActionByName resolves a keymap action string
func ActionByName(name string) (IntentType, bool) {
	it, ok := actionNames[name]
	return it, ok
}

// ActionName is the keymap string for an intent, or "" if it has none
func ActionName(it IntentType) string {
	for name, v := range actionNames {
		if v == it && name != "none" {
			return name
		}
	}
	return ""
}

// ActionNames lists every valid keymap action, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for name := range actionNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
