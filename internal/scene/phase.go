package scene

// Phase is the frame state of the scene.
type Phase int

const (
	// PhaseWaiting shows the click prompt until the start signal.
	PhaseWaiting Phase = iota
	// PhaseIntro fades in the title for the intro duration.
	PhaseIntro
	// PhaseRunning animates the full system. It is never left.
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseIntro:
		return "intro"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}
