package universe

import (
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/olivierh59500/solar/internal/draw"
	"github.com/olivierh59500/solar/internal/randfield"
)

// rotationPeriod is the wall-clock divisor of self-rotation: a body with
// rate 1 turns one radian every 500ms.
const rotationPeriod = 500 * time.Millisecond

// SelfRotation returns the spin angle of a body after elapsed wall-clock
// time. It is recomputed from the absolute clock every frame, so it never
// accumulates drift.
func SelfRotation(elapsed time.Duration, orbitSpeed, timeScale float64) float64 {
	rate := orbitSpeed * timeScale
	if rate == 0 {
		return 0
	}
	return elapsed.Seconds() * 1000 / (float64(rotationPeriod/time.Millisecond) / rate)
}

// Star is one background star drifting on smooth noise.
type Star struct {
	Position mgl64.Vec3
	Diameter float64

	// Cursor is the per-axis phase into the noise function.
	Cursor [3]float64

	Generation uint64
}

// Move drifts the star by a noise-driven offset in [-MoveSpeed, MoveSpeed]
// on each axis, then advances each cursor by U(0, MoveIntensity).
func (s *Star) Move(field *randfield.Field, set *StarFieldSettings) {
	for axis := 0; axis < 3; axis++ {
		s.Position[axis] += field.Noise1D(s.Cursor[axis]) * set.MoveSpeed
	}
	for axis := 0; axis < 3; axis++ {
		s.Cursor[axis] += field.Range(0, set.MoveIntensity)
	}
}

// Display renders the star as an unlit sphere tinted by the light.
func (s *Star) Display(set *Settings) draw.Sphere {
	return draw.Sphere{
		Center: s.Position,
		Radius: s.Diameter,
		Detail: set.StarField.DetailLevel,
		Material: draw.Material{
			Tint:     draw.Opaque(set.StarColor()),
			Emissive: true,
		},
	}
}

// Planet orbits the main star on a fixed circle.
type Planet struct {
	Position mgl64.Vec3
	Diameter float64
	Name     string
	Texture  int

	// OrbitSpeed is the self-rotation rate.
	OrbitSpeed float64
	// Speed is the orbital angle increment per frame.
	Speed float64
	Angle float64

	Generation uint64
}

// Orbit advances the orbital angle by Speed and places the planet on its
// ring. timeScale multiplies the accumulated angle, not the increment, so
// changing it moves the planet along the ring at once.
func (p *Planet) Orbit(radius, timeScale float64, center mgl64.Vec3) {
	p.Angle += p.Speed
	a := timeScale * p.Angle
	p.Position = mgl64.Vec3{
		radius*math.Cos(a) + center[0],
		center[1],
		radius*math.Sin(a) + center[2],
	}
}

// Display renders the planet with its texture, lit by the main star.
func (p *Planet) Display(set *Settings, elapsed time.Duration, timeScale float64) draw.Sphere {
	return draw.Sphere{
		Center:    p.Position,
		Radius:    p.Diameter,
		Detail:    set.Planet.DetailLevel,
		RotationY: SelfRotation(elapsed, p.OrbitSpeed, timeScale),
		Material: draw.Material{
			Texture: draw.TexturePlanet,
			Index:   p.Texture,
			Tint:    draw.White,
			Ambient: set.Planet.AmbientLight,
		},
	}
}

// Label places the planet's name above it.
func (p *Planet) Label(g *GlobalSettings) draw.Label {
	return nameLabel(p.Name, p.Position, p.Diameter, g)
}

// Track is the orbit ring paired by index with a planet.
type Track struct {
	// Radius is the orbit radius of the paired planet.
	Radius float64

	Generation uint64
}

// Display renders the ring around the main star.
func (t *Track) Display(set *Settings) draw.Ring {
	return draw.Ring{
		Center: set.MainStar.Position,
		Radius: t.Radius,
		Tube:   set.Track.TubeDiameter,
		Detail: set.Track.DetailLevel,
		Color:  set.TrackNRGBA(),
	}
}

// MainStar is the central, non-translating light source.
type MainStar struct {
	Position   mgl64.Vec3
	Diameter   float64
	Name       string
	OrbitSpeed float64

	Generation uint64
}

// Display renders the sun texture tinted with the light color, followed
// by the point light placed at its center.
func (m *MainStar) Display(set *Settings, elapsed time.Duration, timeScale float64) (draw.Sphere, draw.PointLight) {
	light := draw.Opaque(set.LightRGBA())
	return draw.Sphere{
			Center:    m.Position,
			Radius:    m.Diameter,
			Detail:    set.MainStar.DetailLevel,
			RotationY: SelfRotation(elapsed, m.OrbitSpeed, timeScale),
			Material: draw.Material{
				Texture:  draw.TextureSun,
				Tint:     light,
				Emissive: true,
			},
		}, draw.PointLight{
			Position: m.Position,
			Color:    light,
		}
}

// Plain renders the star as an untextured white sphere.
func (m *MainStar) Plain(set *Settings) draw.Sphere {
	return draw.Sphere{
		Center: m.Position,
		Radius: m.Diameter,
		Detail: set.MainStar.DetailLevel,
		Material: draw.Material{
			Tint:     draw.White,
			Emissive: true,
		},
	}
}

// Label places the star's name above it.
func (m *MainStar) Label(g *GlobalSettings) draw.Label {
	return nameLabel(m.Name, m.Position, m.Diameter, g)
}

func nameLabel(name string, pos mgl64.Vec3, diameter float64, g *GlobalSettings) draw.Label {
	return draw.Label{
		Position: mgl64.Vec3{pos[0], pos[1] - diameter - g.UISize - g.UIDistance, pos[2]},
		Text:     name,
		Size:     g.UISize,
		Color:    draw.White,
	}
}
