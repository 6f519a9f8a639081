package input

// Action is a bindable control
type Action uint8

const (
	ActionNone Action = iota

	// Held controls, sampled every tick
	ActionLeft
	ActionRight
	ActionJetpack
	ActionFire

	// Commands, handled once per press
	ActionPause
	ActionDebug
	ActionMute
	ActionQuit
	ActionSelect1
	ActionSelect2
	ActionSelect3
	ActionResize

	actionCount
)

var actionNames = [actionCount]string{
	"none", "left", "right", "jetpack", "fire",
	"pause", "debug", "mute", "quit", "select1", "select2", "select3", "resize",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Held reports whether the action is a continuous control
func (a Action) Held() bool {
	return a >= ActionLeft && a <= ActionFire
}

// SelectIndex returns the option index of a select action
func (a Action) SelectIndex() (int, bool) {
	if a < ActionSelect1 || a > ActionSelect3 {
		return 0, false
	}
	return int(a - ActionSelect1), true
}
