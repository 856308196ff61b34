package scene

// CommandKind enumerates the control panel's actions.
type CommandKind int

const (
	// CommandStart is the "screen clicked" signal that leaves the waiting
	// screen. Only the first one counts.
	CommandStart CommandKind = iota
	CommandGenerate
	CommandResetCamera
	CommandFocusRandomPlanet

	CommandSetTimeScale
	CommandSetEntropy
	CommandSetColorfulness
	CommandSetFollowDistance
	CommandSetTrackColor

	// CommandOrbit rotates the camera by DX, DY expressed as fractions of
	// the screen size.
	CommandOrbit
	// CommandZoom dollies the camera by Value wheel steps.
	CommandZoom
)

var commandNames = map[CommandKind]string{
	CommandStart:             "start",
	CommandGenerate:          "generate",
	CommandResetCamera:       "reset-camera",
	CommandFocusRandomPlanet: "focus-random-planet",
	CommandSetTimeScale:      "set-time-scale",
	CommandSetEntropy:        "set-entropy",
	CommandSetColorfulness:   "set-colorfulness",
	CommandSetFollowDistance: "set-follow-distance",
	CommandSetTrackColor:     "set-track-color",
	CommandOrbit:             "orbit",
	CommandZoom:              "zoom",
}

func (k CommandKind) String() string {
	if s, ok := commandNames[k]; ok {
		return s
	}
	return "unknown"
}

// Command is one input event for the scene.
type Command struct {
	Kind   CommandKind
	Value  float64
	Text   string
	DX, DY float64
}

// Set returns a command that sets a scalar control.
func Set(kind CommandKind, v float64) Command {
	return Command{Kind: kind, Value: v}
}
