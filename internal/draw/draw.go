// Package draw defines the per-frame directives the scene hands to a
// rendering backend. Every directive carries its own transform and
// material, so a backend never has to restore state between siblings.
package draw

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Directive is one drawing instruction.
type Directive interface {
	directive()
}

// TextureKind selects the image bound to a sphere.
type TextureKind int

const (
	TextureNone TextureKind = iota
	TexturePlanet
	TextureSun
)

// Material describes how a primitive is shaded.
type Material struct {
	Texture TextureKind
	Index   int // planet texture index when Texture == TexturePlanet

	// Tint multiplies the texture, or is the flat color without one.
	Tint color.NRGBA

	// Emissive materials ignore scene lights.
	Emissive bool

	// Ambient is the light floor for lit materials, in [0, 255].
	Ambient float64
}

// View is the camera snapshot used for every directive of a frame.
type View struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Up     mgl64.Vec3
	FOV    float64
	Near   float64
	Far    float64
}

// Clear fills the whole frame.
type Clear struct {
	Color color.NRGBA
}

// PointLight lights every lit primitive drawn after it.
type PointLight struct {
	Position mgl64.Vec3
	Color    color.NRGBA
}

// Sphere is a sphere centered at Center, spun RotationY radians around
// the vertical axis.
type Sphere struct {
	Center    mgl64.Vec3
	Radius    float64
	Detail    int
	RotationY float64
	Material  Material
}

// Ring is a torus lying in the horizontal plane around Center.
type Ring struct {
	Center mgl64.Vec3
	Radius float64
	Tube   float64
	Detail int
	Color  color.NRGBA
}

// Label is text anchored at a world position and scaled with distance.
type Label struct {
	Position mgl64.Vec3
	Text     string
	Size     float64
	Color    color.NRGBA
}

// Caption is screen-space text, centered horizontally. OffsetY is a
// fraction of the screen height from the center; Scale is the text size as
// a fraction of the screen width.
type Caption struct {
	Text    string
	OffsetY float64
	Scale   float64
	Color   color.NRGBA
}

func (Clear) directive()      {}
func (PointLight) directive() {}
func (Sphere) directive()     {}
func (Ring) directive()       {}
func (Label) directive()      {}
func (Caption) directive()    {}

// List is the ordered output of one frame.
type List struct {
	View  View
	Items []Directive
}

// Add appends directives in order.
func (l *List) Add(d ...Directive) {
	l.Items = append(l.Items, d...)
}

// Reset empties the list, keeping its backing array.
func (l *List) Reset() {
	l.View = View{}
	l.Items = l.Items[:0]
}

// Count returns how many directives of type T the list holds.
func Count[T Directive](l *List) int {
	n := 0
	for _, d := range l.Items {
		if _, ok := d.(T); ok {
			n++
		}
	}
	return n
}

// White and Black are the opaque extremes.
var (
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Black = color.NRGBA{A: 0xff}
)

// Opaque converts an RGBA into an opaque NRGBA.
func Opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Lerp blends a towards b by t in [0, 1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
