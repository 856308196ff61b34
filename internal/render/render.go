// Package render draws a frame's directives with ebiten. Spheres become
// textured, lit discs, rings become projected polylines and labels are
// world-anchored text, all painted back to front.
package render

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/solar/internal/assets"
	"github.com/olivierh59500/solar/internal/draw"
)

// Labels smaller than this many pixels are not drawn.
const minLabelSize = 6

// Renderer draws directive lists onto ebiten images.
type Renderer struct {
	catalog *assets.Catalog
	faces   map[int]*text.GoTextFace

	strokes  []stroke
	vertices []ebiten.Vertex
	indices  []uint16
}

// New returns a renderer backed by the catalog's textures and font.
func New(catalog *assets.Catalog) *Renderer {
	return &Renderer{
		catalog: catalog,
		faces:   make(map[int]*text.GoTextFace),
	}
}

// Render draws l onto screen. Clears come first and the light is known
// before anything is shaded. Spheres, ring segments and labels are then
// painted far to near, and captions go on top.
func (r *Renderer) Render(screen *ebiten.Image, l *draw.List) {
	b := screen.Bounds()
	pr := NewProjector(l.View, b.Dx(), b.Dy())

	var light *draw.PointLight
	for _, d := range l.Items {
		switch d := d.(type) {
		case draw.Clear:
			screen.Fill(d.Color)
		case draw.PointLight:
			light = &d
		}
	}

	r.strokes = appendStrokes(r.strokes[:0], pr, l.Items)
	for _, st := range r.strokes {
		switch d := st.item.(type) {
		case draw.Sphere:
			r.sphere(screen, l.View.Eye, light, st, d)
		case draw.Ring:
			vector.StrokeLine(screen, float32(st.x), float32(st.y), float32(st.x2), float32(st.y2), float32(st.size), d.Color, true)
		case draw.Label:
			r.text(screen, d.Text, st.x, st.y, st.size, d.Color)
		}
	}

	for _, d := range l.Items {
		if c, ok := d.(draw.Caption); ok {
			r.caption(screen, b.Dx(), b.Dy(), c)
		}
	}
}

// stroke is one projected piece of a frame: a sphere's disc, a ring
// segment or a label. size is the disc radius, line width or font size
// in pixels.
type stroke struct {
	item   draw.Directive
	depth  float64
	x, y   float64
	x2, y2 float64
	size   float64
}

// appendStrokes projects the world-space directives of items, drops what
// is off screen and sorts the rest far to near. Equal depths keep list
// order.
func appendStrokes(out []stroke, pr Projector, items []draw.Directive) []stroke {
	for _, d := range items {
		switch d := d.(type) {
		case draw.Sphere:
			x, y, depth, ok := pr.Project(d.Center)
			if !ok {
				continue
			}
			rad := math.Max(pr.Scale(d.Radius, depth), 0.5)
			if !pr.Visible(x, y, rad) {
				continue
			}
			out = append(out, stroke{item: d, depth: depth, x: x, y: y, size: rad})
		case draw.Ring:
			out = appendRing(out, pr, d)
		case draw.Label:
			if d.Text == "" {
				continue
			}
			x, y, depth, ok := pr.Project(d.Position)
			if !ok {
				continue
			}
			size := pr.Scale(d.Size, depth)
			if size < minLabelSize || !pr.Visible(x, y, size) {
				continue
			}
			out = append(out, stroke{item: d, depth: depth, x: x, y: y, size: size})
		}
	}
	slices.SortStableFunc(out, func(a, b stroke) int {
		return cmp.Compare(b.depth, a.depth)
	})
	return out
}

// appendRing splits g into line segments, each at the mean depth of its
// ends.
func appendRing(out []stroke, pr Projector, g draw.Ring) []stroke {
	n := g.Detail
	if n < 3 {
		n = 3
	}
	var px, py, pd float64
	prevOK := false
	for i := 0; i <= n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		p := g.Center.Add(mgl64.Vec3{g.Radius * math.Cos(a), 0, g.Radius * math.Sin(a)})
		x, y, depth, ok := pr.Project(p)
		if ok && prevOK {
			out = append(out, stroke{
				item:  g,
				depth: (pd + depth) / 2,
				x:     px,
				y:     py,
				x2:    x,
				y2:    y,
				size:  math.Max(1, pr.Scale(g.Tube*2, depth)),
			})
		}
		px, py, pd, prevOK = x, y, depth, ok
	}
	return out
}

func (r *Renderer) sphere(screen *ebiten.Image, eye mgl64.Vec3, light *draw.PointLight, st stroke, s draw.Sphere) {
	x, y, rad := st.x, st.y, st.size
	shade := Shade(s.Material, s.Center, eye, light)
	tex := r.texture(s.Material)
	if tex == nil || rad < 2 {
		c := color.NRGBA{
			R: uint8(shade[0] * 255),
			G: uint8(shade[1] * 255),
			B: uint8(shade[2] * 255),
			A: s.Material.Tint.A,
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(rad), c, true)
		return
	}

	tb := tex.Bounds()
	r.vertices, r.indices = appendDisc(r.vertices[:0], r.indices[:0], x, y, rad, s.RotationY, tb.Dx(), tb.Dy(), shade)
	op := &ebiten.DrawTrianglesOptions{
		Address:   ebiten.AddressRepeat,
		AntiAlias: true,
	}
	screen.DrawTriangles(r.vertices, r.indices, tex, op)
}

func (r *Renderer) texture(m draw.Material) *ebiten.Image {
	switch m.Texture {
	case draw.TexturePlanet:
		if m.Index >= 0 && m.Index < len(r.catalog.Textures) {
			return r.catalog.Textures[m.Index]
		}
	case draw.TextureSun:
		return r.catalog.Sun
	}
	return nil
}

// Shade returns the RGB multiplier of a material at center. Emissive
// materials are their tint; lit ones get the ambient floor plus a diffuse
// term from how much of the lit hemisphere faces the eye.
func Shade(m draw.Material, center, eye mgl64.Vec3, light *draw.PointLight) [3]float32 {
	tint := [3]float64{
		float64(m.Tint.R) / 255,
		float64(m.Tint.G) / 255,
		float64(m.Tint.B) / 255,
	}
	if m.Emissive {
		return [3]float32{float32(tint[0]), float32(tint[1]), float32(tint[2])}
	}

	ambient := m.Ambient / 255
	var out [3]float32
	var diffuse float64
	var lc [3]float64
	if light != nil {
		toLight := light.Position.Sub(center)
		toEye := eye.Sub(center)
		if toLight.Len() > 0 && toEye.Len() > 0 {
			diffuse = 0.5 + 0.5*toLight.Normalize().Dot(toEye.Normalize())
		} else {
			diffuse = 1
		}
		lc = [3]float64{
			float64(light.Color.R) / 255,
			float64(light.Color.G) / 255,
			float64(light.Color.B) / 255,
		}
	}
	for i := range out {
		out[i] = float32(math.Min(1, tint[i]*(ambient+diffuse*lc[i])))
	}
	return out
}

func (r *Renderer) caption(screen *ebiten.Image, w, h int, c draw.Caption) {
	x := float64(w) / 2
	y := float64(h)/2 + c.OffsetY*float64(h)
	r.text(screen, c.Text, x, y, c.Scale*float64(w), c.Color)
}

func (r *Renderer) text(screen *ebiten.Image, s string, x, y, size float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, r.face(size), op)
}

// face caches one face per whole pixel size.
func (r *Renderer) face(size float64) *text.GoTextFace {
	key := int(math.Max(1, math.Round(size)))
	f, ok := r.faces[key]
	if !ok {
		f = &text.GoTextFace{Source: r.catalog.Font, Size: float64(key)}
		r.faces[key] = f
	}
	return f
}
