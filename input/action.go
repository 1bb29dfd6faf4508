package input

// Action is the semantic result of a key press
type Action uint8

const (
	ActionNone Action = iota
	ActionToggleDebug
	ActionBurst
	ActionQuit
)

var actionNames = [...]string{"none", "toggle_debug", "burst", "quit"}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}
