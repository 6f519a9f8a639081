package parameter

import "time"

// Key Hold Emulation
// Terminals report presses and auto-repeats but no releases
const (
	// KeyInitialHold keeps a key held after its first press, covers the OS repeat delay
	KeyInitialHold = 500 * time.Millisecond

	// KeyRepeatHold keeps a key held after each auto-repeat
	KeyRepeatHold = 120 * time.Millisecond
)
