// Package scene drives the solar system frame by frame: it applies
// control panel commands, runs the waiting/intro/running state machine,
// advances the entities and emits the frame's draw directives.
package scene

import (
	"log/slog"
	"math"
	"time"

	"github.com/olivierh59500/solar/internal/camera"
	"github.com/olivierh59500/solar/internal/draw"
	"github.com/olivierh59500/solar/internal/randfield"
	"github.com/olivierh59500/solar/internal/universe"
)

// Default texts.
const (
	DefaultPrompt   = "Click on the screen to start"
	DefaultTitle    = "Only in the darkness can you see the stars"
	DefaultSubtitle = "Solar by Junyi Han"
)

// DefaultIntroSeconds is the length of the intro fade.
const DefaultIntroSeconds = 15

// Options configure a scene.
type Options struct {
	Seed         int64
	IntroSeconds float64
	// SkipIntro forces the intro to zero length.
	SkipIntro bool

	Controls universe.Controls
	Catalog  universe.Catalog

	Prompt   string
	Title    string
	Subtitle string
}

// Result reports what happened during a Step.
type Result struct {
	// Started is true on the one step where the start signal was accepted.
	Started bool
	// Generated is true when the step regenerated the universe.
	Generated bool
}

// Scene owns the universe, the camera and the control values. It is not
// safe for concurrent use.
type Scene struct {
	opts     Options
	field    *randfield.Field
	controls universe.Controls
	universe *universe.Universe
	camera   *camera.Camera

	phase      Phase
	frame      int
	startFrame int
	generation uint64

	list draw.List
	log  *slog.Logger
}

// New creates a scene in the waiting phase with a first universe already
// generated.
func New(opts Options) *Scene {
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Subtitle == "" {
		opts.Subtitle = DefaultSubtitle
	}
	if opts.SkipIntro || opts.IntroSeconds < 0 {
		opts.IntroSeconds = 0
	}

	s := &Scene{
		opts:     opts,
		field:    randfield.New(opts.Seed),
		controls: opts.Controls.Clamp(),
		camera:   camera.New(),
		phase:    PhaseWaiting,
		log:      slog.With("component", "scene"),
	}
	s.Generate()
	return s
}

// Phase returns the current phase.
func (s *Scene) Phase() Phase { return s.phase }

// Controls returns the live control values.
func (s *Scene) Controls() universe.Controls { return s.controls }

// Universe returns the current generation.
func (s *Scene) Universe() *universe.Universe { return s.universe }

// Camera returns the scene camera.
func (s *Scene) Camera() *camera.Camera { return s.camera }

// Frame returns the directives of the last step. The list is reused by the
// next Step.
func (s *Scene) Frame() *draw.List { return &s.list }

// Generate discards the current universe, builds a new one from the
// current controls and returns the camera to the overview. The phase is
// left alone.
func (s *Scene) Generate() {
	s.generation++
	s.universe = universe.Generate(s.controls, s.field, s.opts.Catalog, s.generation)
	s.ResetCamera()
}

// ResetCamera returns the camera to the overview.
func (s *Scene) ResetCamera() {
	s.camera.Reset(s.controls.Entropy, s.universe.Settings.MainStar.Position)
}

// introFrames is the intro length in frames.
func (s *Scene) introFrames() int {
	return int(s.opts.IntroSeconds * float64(s.universe.Settings.Global.FPS))
}

// Step runs one frame. elapsed is the wall-clock time since the program
// started and only drives self-rotation.
func (s *Scene) Step(elapsed time.Duration, cmds []Command) Result {
	s.frame++

	var res Result
	for _, cmd := range cmds {
		s.apply(cmd, &res)
	}

	if s.phase == PhaseIntro && s.frame-s.startFrame > s.introFrames() {
		s.phase = PhaseRunning
		s.log.Info("scene running", "frame", s.frame)
	}

	u := s.universe
	set := u.Settings
	s.list.Reset()

	if s.camera.Following() {
		if u.Focusable(s.camera.Focus) {
			s.camera.Follow(u.Planets[s.camera.Focus], s.controls.FollowDistance, set.Global.UISize/3)
		} else {
			s.ResetCamera()
		}
	}

	switch s.phase {
	case PhaseWaiting:
		s.waiting()
	case PhaseIntro:
		s.intro()
	case PhaseRunning:
		s.running(elapsed)
	}
	s.list.View = s.camera.Snapshot(&set.Global)
	return res
}

func (s *Scene) apply(cmd Command, res *Result) {
	switch cmd.Kind {
	case CommandStart:
		if s.phase != PhaseWaiting {
			return
		}
		s.phase = PhaseIntro
		s.startFrame = s.frame
		res.Started = true
		s.log.Info("scene started", "frame", s.frame, "intro_frames", s.introFrames())
	case CommandGenerate:
		s.Generate()
		res.Generated = true
	case CommandResetCamera:
		s.ResetCamera()
	case CommandFocusRandomPlanet:
		if !s.camera.FocusRandom(len(s.universe.Planets), s.field) {
			s.log.Debug("no planet to focus")
		}
	case CommandSetTimeScale:
		s.controls.TimeScale = cmd.Value
	case CommandSetEntropy:
		s.controls.Entropy = cmd.Value
	case CommandSetColorfulness:
		s.controls.Colorfulness = cmd.Value
	case CommandSetFollowDistance:
		s.controls.FollowDistance = cmd.Value
	case CommandSetTrackColor:
		if _, err := universe.ParseHexColor(cmd.Text); err != nil {
			s.log.Warn("ignoring track color", "error", err)
			return
		}
		s.controls.TrackColor = cmd.Text
	case CommandOrbit:
		if s.phase != PhaseRunning {
			return
		}
		sens := s.universe.Settings.Global.Sensitivity
		s.camera.Orbit(-cmd.DX*sens[0]*math.Pi, -cmd.DY*sens[1]*math.Pi)
	case CommandZoom:
		if s.phase != PhaseRunning {
			return
		}
		sens := s.universe.Settings.Global.Sensitivity
		s.camera.Dolly(math.Pow(0.9, cmd.Value*sens[2]/2))
	}
	s.controls = s.controls.Clamp()
}

func (s *Scene) waiting() {
	s.list.Add(
		draw.Clear{Color: draw.White},
		draw.Caption{Text: s.opts.Prompt, OffsetY: -0.1, Scale: 1.0 / 20, Color: draw.Black},
	)
}

func (s *Scene) intro() {
	set := s.universe.Settings
	t := 1.0
	if n := s.introFrames(); n > 0 {
		t = float64(s.frame-s.startFrame) / float64(n)
	}
	s.ResetCamera()
	s.list.Add(
		draw.Clear{Color: draw.Lerp(draw.White, draw.Opaque(set.BackgroundColor()), t)},
		draw.Caption{Text: s.opts.Title, OffsetY: -0.3, Scale: 1.0 / 18, Color: draw.White},
		draw.Caption{Text: s.opts.Subtitle, OffsetY: 0.25, Scale: 1.0 / 40, Color: draw.White},
		s.universe.MainStar.Plain(set),
	)
}

// running emits the full scene: main star, stars, planets, then tracks,
// each in collection order. Every entity is updated right before it is
// displayed.
func (s *Scene) running(elapsed time.Duration) {
	u := s.universe
	set := u.Settings
	ts := s.controls.TimeScale

	s.list.Add(draw.Clear{Color: draw.Opaque(set.BackgroundColor())})

	body, light := u.MainStar.Display(set, elapsed, ts)
	s.list.Add(body, light, u.MainStar.Label(&set.Global))

	for _, star := range u.Stars {
		star.Move(s.field, &set.StarField)
		s.list.Add(star.Display(set))
	}

	center := set.MainStar.Position
	for i, p := range u.Planets {
		p.Orbit(u.Tracks[i].Radius, ts, center)
		s.list.Add(p.Display(set, elapsed, ts), p.Label(&set.Global))
	}

	for _, tr := range u.Tracks {
		s.list.Add(tr.Display(set))
	}
}
