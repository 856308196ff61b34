package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/olivierh59500/solar/internal/draw"
)

// Projector maps world positions to screen pixels for one frame.
type Projector struct {
	viewProj mgl64.Mat4
	width    float64
	height   float64
	near     float64
	// focal is the pixel size of one world unit at depth 1.
	focal float64
}

// NewProjector builds the perspective projection of v onto a w×h screen.
func NewProjector(v draw.View, w, h int) Projector {
	width, height := float64(w), float64(h)
	aspect := 1.0
	if height > 0 {
		aspect = width / height
	}
	proj := mgl64.Perspective(v.FOV, aspect, v.Near, v.Far)
	view := mgl64.LookAtV(v.Eye, v.Target, v.Up)
	return Projector{
		viewProj: proj.Mul4(view),
		width:    width,
		height:   height,
		near:     v.Near,
		focal:    height / 2 / math.Tan(v.FOV/2),
	}
}

// Project returns the screen position and view depth of p. ok is false
// when p is behind the near plane.
func (pr Projector) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := pr.viewProj.Mul4x1(p.Vec4(1))
	w := clip[3]
	if w <= pr.near {
		return 0, 0, w, false
	}
	x = (clip[0]/w + 1) / 2 * pr.width
	y = (1 - clip[1]/w) / 2 * pr.height
	return x, y, w, true
}

// Scale converts a world length at depth into pixels.
func (pr Projector) Scale(length, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return length * pr.focal / depth
}

// Visible reports whether a disc of radius r at (x, y) touches the screen.
func (pr Projector) Visible(x, y, r float64) bool {
	return x+r >= 0 && x-r <= pr.width && y+r >= 0 && y-r <= pr.height
}
