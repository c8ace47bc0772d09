package core

// Action represents a semantic game action, abstracted from physical key presses.
// The turn engine works with these intents and never sees raw keycodes.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveN            // k, w, Up
	ActionMoveS            // j, s, Down
	ActionMoveW            // h, a, Left
	ActionMoveE            // l, d, Right
	ActionMoveNW           // y
	ActionMoveNE           // u
	ActionMoveSW           // b
	ActionMoveSE           // n
	ActionWait             // . - skip a turn
	ActionConfirm          // y/Y while a prompt is open, Enter in menus
	ActionCancel           // Esc - close overlays
	ActionRestart          // r after game over
	ActionQuit             // configured quit key - opens the confirm prompt
	ActionInventory        // i
	ActionHelp             // configured help key
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveN:
		return "MoveN"
	case ActionMoveS:
		return "MoveS"
	case ActionMoveW:
		return "MoveW"
	case ActionMoveE:
		return "MoveE"
	case ActionMoveNW:
		return "MoveNW"
	case ActionMoveNE:
		return "MoveNE"
	case ActionMoveSW:
		return "MoveSW"
	case ActionMoveSE:
		return "MoveSE"
	case ActionWait:
		return "Wait"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionInventory:
		return "Inventory"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// Delta returns the movement vector of a move action.
// ok is false for actions that are not moves.
func (a Action) Delta() (dx, dy int, ok bool) {
	switch a {
	case ActionMoveN:
		return 0, -1, true
	case ActionMoveS:
		return 0, 1, true
	case ActionMoveW:
		return -1, 0, true
	case ActionMoveE:
		return 1, 0, true
	case ActionMoveNW:
		return -1, -1, true
	case ActionMoveNE:
		return 1, -1, true
	case ActionMoveSW:
		return -1, 1, true
	case ActionMoveSE:
		return 1, 1, true
	default:
		return 0, 0, false
	}
}

// InputFrame carries the intents delivered for one engine step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this step.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf returns a frame holding a single action.
func FrameOf(a Action) InputFrame {
	f := NewInputFrame()
	f.Set(a)
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
