package penguin

// Event is a discrete occurrence reported with a frame.
type Event int

const (
	EventStart Event = iota + 1
	EventFlap
	EventSpawn
	EventScore
	EventHit
	EventRestart
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventFlap:
		return "flap"
	case EventSpawn:
		return "spawn"
	case EventScore:
		return "score"
	case EventHit:
		return "hit"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Listener receives fire-and-forget notifications, typically for audio.
// Calls happen synchronously inside Session.Step and must not block.
type Listener interface {
	OnFlap()
	OnHit()
}

type nopListener struct{}

func (nopListener) OnFlap() {}
func (nopListener) OnHit()  {}
