package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - start the run and flap
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the host input collected during one tick.
type InputFrame struct {
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

// Signal is an abstract input event consumed by the simulation.
type Signal int

const (
	SignalStart Signal = iota + 1
	SignalFlap
	SignalRestart
)

// String returns the signal name.
func (s Signal) String() string {
	switch s {
	case SignalStart:
		return "start"
	case SignalFlap:
		return "flap"
	case SignalRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// SignalQueue buffers signals delivered between ticks.
// The simulation pulls the whole queue once per tick, in arrival order.
type SignalQueue struct {
	pending []Signal
}

// Push appends a signal.
func (q *SignalQueue) Push(s Signal) {
	q.pending = append(q.pending, s)
}

// Len returns the number of queued signals.
func (q *SignalQueue) Len() int {
	return len(q.pending)
}

// Drain returns all queued signals and empties the queue.
func (q *SignalQueue) Drain() []Signal {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Signal, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// SignalsFor translates a host input frame into simulation signals.
// Jump both starts a run and flaps, so the first press also lifts the player.
func SignalsFor(in InputFrame, q *SignalQueue) {
	if in.Has(ActionJump) {
		q.Push(SignalStart)
		q.Push(SignalFlap)
	}
	if in.Has(ActionRestart) {
		q.Push(SignalRestart)
	}
}
