package core

// Action is a semantic input intent, decoupled from physical keys.
// The key mapper in the platform layer translates terminal key events
// into actions; games only ever see actions.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause

	numActions
)

var actionNames = [numActions]string{
	"None", "Up", "Down", "Left", "Right",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= numActions {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame collects the actions triggered during one simulation tick.
// It is a value type backed by a bitmask; the zero value is an empty
// frame, and copying a frame copies its contents.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	f.bits |= 1 << uint(a)
}

// Has reports whether the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.bits&(1<<uint(a)) != 0
}

// Any reports whether any action at all was triggered this frame.
func (f InputFrame) Any() bool {
	return f.bits != 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of this frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
