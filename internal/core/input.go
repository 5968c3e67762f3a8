package core

// Action is a semantic input intent, decoupled from physical keys.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left - rotate aim left
	ActionRight           // D, Right - rotate aim right
	ActionLaunch          // Space, mouse click - fire the volley
	ActionConfirm         // Enter - start from title, close the shop
	ActionBack            // B, Esc - back to menu
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit
	ActionPause           // P - pause/unpause
	ActionBuy1            // 1 - first shop item
	ActionBuy2            // 2 - second shop item
	ActionBuy3            // 3 - third shop item
	ActionBuy4            // 4 - fourth shop item
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionLaunch:  "Launch",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
	ActionBuy1:    "Buy1",
	ActionBuy2:    "Buy2",
	ActionBuy3:    "Buy3",
	ActionBuy4:    "Buy4",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// BuyActions lists the shop purchase actions in slot order.
var BuyActions = []Action{ActionBuy1, ActionBuy2, ActionBuy3, ActionBuy4}

// Pointer is the last known mouse position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool
}

// InputFrame holds everything the player did during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
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

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// PointAt records a pointer position for this frame.
func (f *InputFrame) PointAt(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Pointer{}
}

// Clone creates an independent copy of this frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
