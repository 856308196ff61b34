// Package game adapts the scene to ebiten: it turns keyboard and mouse
// input into scene commands, steps the scene once per tick and renders the
// resulting frame.
package game

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/solar/internal/audio"
	"github.com/olivierh59500/solar/internal/render"
	"github.com/olivierh59500/solar/internal/scene"
	"github.com/olivierh59500/solar/internal/universe"
)

// binding maps a key to a scalar control. Shift lowers the value.
type binding struct {
	key   ebiten.Key
	kind  scene.CommandKind
	step  float64
	value func(universe.Controls) float64
}

var bindings = []binding{
	{ebiten.KeyT, scene.CommandSetTimeScale, 0.1, func(c universe.Controls) float64 { return c.TimeScale }},
	{ebiten.KeyE, scene.CommandSetEntropy, 0.05, func(c universe.Controls) float64 { return c.Entropy }},
	{ebiten.KeyK, scene.CommandSetColorfulness, 0.25, func(c universe.Controls) float64 { return c.Colorfulness }},
	{ebiten.KeyD, scene.CommandSetFollowDistance, 0.1, func(c universe.Controls) float64 { return c.FollowDistance }},
}

// TrackPalette is cycled by the track color key.
var TrackPalette = []string{
	universe.DefaultTrackColor,
	"#ffffff",
	"#ff6f61",
	"#6fa8dc",
	"#93c47d",
	"#ffd966",
	"#c27ba0",
}

// Game implements ebiten.Game.
type Game struct {
	scene    *scene.Scene
	renderer *render.Renderer
	music    *audio.Music

	width, height int
	started       time.Time
	pending       []scene.Command

	prevX, prevY int
	showHUD      bool
	trackIndex   int
}

// New wires a scene to its renderer and music.
func New(width, height int, sc *scene.Scene, r *render.Renderer, m *audio.Music) *Game {
	return &Game{
		scene:    sc,
		renderer: r,
		music:    m,
		width:    width,
		height:   height,
		started:  time.Now(),
		showHUD:  true,
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	g.handleInput()

	res := g.scene.Step(time.Since(g.started), g.pending)
	g.pending = g.pending[:0]
	if res.Started {
		g.music.Start()
	}
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	frame := g.scene.Frame()
	if len(frame.Items) == 0 {
		return
	}
	g.renderer.Render(screen, frame)

	if g.showHUD && g.scene.Phase() == scene.PhaseRunning {
		ebitenutil.DebugPrint(screen, g.hud())
	}
}

// Layout follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// push queues a command for the next scene step.
func (g *Game) push(cmd scene.Command) {
	g.pending = append(g.pending, cmd)
}

// handleInput processes keyboard and mouse input
func (g *Game) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.push(scene.Command{Kind: scene.CommandStart})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.push(scene.Command{Kind: scene.CommandGenerate})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.push(scene.Command{Kind: scene.CommandResetCamera})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.push(scene.Command{Kind: scene.CommandFocusRandomPlanet})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.trackIndex = (g.trackIndex + 1) % len(TrackPalette)
		g.push(scene.Command{Kind: scene.CommandSetTrackColor, Text: TrackPalette[g.trackIndex]})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	lower := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := g.scene.Controls()
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.push(adjust(b, ctrl, lower))
		}
	}

	// Zoom
	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.push(scene.Set(scene.CommandZoom, wheelY))
	}

	// Orbit (drag)
	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		!inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if cmd, ok := drag(mx-g.prevX, my-g.prevY, g.width, g.height); ok {
			g.push(cmd)
		}
	}
	g.prevX, g.prevY = mx, my
}

// adjust steps a control up, or down when lower is set.
func adjust(b binding, ctrl universe.Controls, lower bool) scene.Command {
	v := b.value(ctrl)
	if lower {
		return scene.Set(b.kind, v-b.step)
	}
	return scene.Set(b.kind, v+b.step)
}

// drag converts a mouse move in pixels into an orbit command.
func drag(dx, dy, width, height int) (scene.Command, bool) {
	if (dx == 0 && dy == 0) || width <= 0 || height <= 0 {
		return scene.Command{}, false
	}
	return scene.Command{
		Kind: scene.CommandOrbit,
		DX:   float64(dx) / float64(width),
		DY:   float64(dy) / float64(height),
	}, true
}

func (g *Game) hud() string {
	c := g.scene.Controls()
	u := g.scene.Universe()
	focus := "overview"
	if cam := g.scene.Camera(); u.Focusable(cam.Focus) {
		focus = u.Planets[cam.Focus].Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f  FPS %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())
	fmt.Fprintf(&b, "[T] time scale     %.2f\n", c.TimeScale)
	fmt.Fprintf(&b, "[E] entropy        %.2f\n", c.Entropy)
	fmt.Fprintf(&b, "[K] colorfulness   %.2f\n", c.Colorfulness)
	fmt.Fprintf(&b, "[D] view distance  %.2f\n", c.FollowDistance)
	fmt.Fprintf(&b, "[O] track color    %s\n", c.TrackColor)
	fmt.Fprintf(&b, "planets %d  stars %d  view %s\n", len(u.Planets), len(u.Stars), focus)
	music := "off"
	if g.music.Playing() {
		music = "on"
	}
	fmt.Fprintf(&b, "light %s  music %s\n", universe.FormatHexColor(u.Settings.LightRGBA()), music)
	b.WriteString("[G] generate  [C] reset camera  [V] view planet  [H] hide")
	return b.String()
}
