package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends (keyboard, SSH, websocket) translate their input into actions so
// games never see raw keys.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W, Up arrow
	ActionMoveDown         // S, Down arrow
	ActionMoveLeft         // A, Left arrow
	ActionMoveRight        // D, Right arrow
	ActionPlace            // Space - place a moxa
	ActionFireUp           // I - fire a needle upwards
	ActionFireDown         // K
	ActionFireLeft         // J
	ActionFireRight        // L
	ActionConfirm          // Enter - next stage / confirm selection
	ActionBack             // B - back to menu
	ActionRestart          // R - restart stage
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P, Escape
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionPlace:     "place",
	ActionFireUp:    "fire_up",
	ActionFireDown:  "fire_down",
	ActionFireLeft:  "fire_left",
	ActionFireRight: "fire_right",
	ActionConfirm:   "confirm",
	ActionBack:      "back",
	ActionRestart:   "restart",
	ActionQuit:      "quit",
	ActionPause:     "pause",
}

// String returns the wire name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction maps a wire name back to an Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}

// MoveDir returns the step for a movement action.
func (a Action) MoveDir() (Dir, bool) {
	switch a {
	case ActionMoveUp:
		return DirUp, true
	case ActionMoveDown:
		return DirDown, true
	case ActionMoveLeft:
		return DirLeft, true
	case ActionMoveRight:
		return DirRight, true
	}
	return Dir{}, false
}

// FireDir returns the step for a fire action.
func (a Action) FireDir() (Dir, bool) {
	switch a {
	case ActionFireUp:
		return DirUp, true
	case ActionFireDown:
		return DirDown, true
	case ActionFireLeft:
		return DirLeft, true
	case ActionFireRight:
		return DirRight, true
	}
	return Dir{}, false
}

// InputFrame holds the actions triggered during one platform frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
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
