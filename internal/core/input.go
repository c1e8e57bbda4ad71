package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate keys into actions so the game never sees raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow
	ActionDown               // Down arrow
	ActionLeft               // Left arrow
	ActionRight              // Right arrow
	ActionConfirm            // Enter - confirm name or menu choice
	ActionBackspace          // Backspace - delete last name character
	ActionDifficulty1        // 1 - Easy
	ActionDifficulty2        // 2 - Medium
	ActionDifficulty3        // 3 - Hard
	ActionAutopilot          // A - toggle the BFS autopilot
	ActionSave               // L - save score to the leaderboard
	ActionRestart            // R - restart after game over
	ActionPause              // P, Esc - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:        "None",
	ActionUp:          "Up",
	ActionDown:        "Down",
	ActionLeft:        "Left",
	ActionRight:       "Right",
	ActionConfirm:     "Confirm",
	ActionBackspace:   "Backspace",
	ActionDifficulty1: "Difficulty1",
	ActionDifficulty2: "Difficulty2",
	ActionDifficulty3: "Difficulty3",
	ActionAutopilot:   "Autopilot",
	ActionSave:        "Save",
	ActionRestart:     "Restart",
	ActionPause:       "Pause",
	ActionQuit:        "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Chars holds printable characters typed this frame, in order.
	// Only consumed while the game is collecting the player name.
	Chars []rune

	order []Action // actions in the order they were first set
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
	if !f.Actions[a] {
		f.order = append(f.order, a)
	}
	f.Actions[a] = true
}

// Sequence returns the actions set this frame in the order they were pressed.
func (f InputFrame) Sequence() []Action {
	return f.order
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends a typed character to the frame.
func (f *InputFrame) Type(r rune) {
	f.Chars = append(f.Chars, r)
}

// Clear resets all actions and characters for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Chars = f.Chars[:0]
	f.order = f.order[:0]
}
