package input

// IntentType discriminates what a key event asks the game to do
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit
	IntentRestart
	IntentToggleMute
	IntentResize

	// Steering intents refresh the held state of a direction
	IntentSteerLeft
	IntentSteerRight
)
