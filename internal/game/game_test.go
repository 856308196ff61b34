package game

import (
	"strings"
	"testing"

	"github.com/olivierh59500/solar/internal/audio"
	"github.com/olivierh59500/solar/internal/scene"
	"github.com/olivierh59500/solar/internal/universe"
)

func TestAdjust(t *testing.T) {
	ctrl := universe.DefaultControls()
	timeScale := bindings[0]

	up := adjust(timeScale, ctrl, false)
	if up.Kind != scene.CommandSetTimeScale || up.Value != ctrl.TimeScale+timeScale.step {
		t.Errorf("raise = %+v", up)
	}
	down := adjust(timeScale, ctrl, true)
	if down.Value != ctrl.TimeScale-timeScale.step {
		t.Errorf("lower = %+v", down)
	}
}

func TestBindingsCoverScalarControls(t *testing.T) {
	want := map[scene.CommandKind]bool{
		scene.CommandSetTimeScale:      true,
		scene.CommandSetEntropy:        true,
		scene.CommandSetColorfulness:   true,
		scene.CommandSetFollowDistance: true,
	}
	for _, b := range bindings {
		delete(want, b.kind)
		if b.step <= 0 {
			t.Errorf("%v has step %v", b.kind, b.step)
		}
	}
	if len(want) != 0 {
		t.Errorf("unbound controls: %v", want)
	}
}

func TestDrag(t *testing.T) {
	if _, ok := drag(0, 0, 800, 600); ok {
		t.Error("no movement produced a command")
	}
	cmd, ok := drag(80, -60, 800, 600)
	if !ok || cmd.Kind != scene.CommandOrbit || cmd.DX != 0.1 || cmd.DY != -0.1 {
		t.Errorf("drag = %+v, %v", cmd, ok)
	}
	if _, ok := drag(5, 5, 0, 0); ok {
		t.Error("zero-sized screen produced a command")
	}
}

func TestTrackPaletteIsValid(t *testing.T) {
	for _, hex := range TrackPalette {
		if _, err := universe.ParseHexColor(hex); err != nil {
			t.Errorf("palette entry %q: %v", hex, err)
		}
	}
}

func TestHUDShowsLightAndMusic(t *testing.T) {
	sc := scene.New(scene.Options{Seed: 3, Controls: universe.DefaultControls()})
	g := New(800, 600, sc, nil, &audio.Music{})

	hud := g.hud()
	light := universe.FormatHexColor(sc.Universe().Settings.LightRGBA())
	if !strings.Contains(hud, "light "+light) {
		t.Errorf("hud lacks light %s:\n%s", light, hud)
	}
	if !strings.Contains(hud, "music off") {
		t.Errorf("silent music not reported:\n%s", hud)
	}
}
