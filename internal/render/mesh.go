package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Disc mesh resolution.
const (
	discRings    = 5
	discSegments = 28
)

// appendDisc appends a polar mesh covering a disc of radius r at (cx, cy).
// Each vertex samples the texture as if the disc were a sphere seen head
// on, with longitude shifted by rot so the texture scrolls as the body
// spins. rot may be any size; it is wrapped to one turn. Vertices near
// the limb are darkened.
func appendDisc(vs []ebiten.Vertex, is []uint16, cx, cy, r, rot float64, texW, texH int, shade [3]float32) ([]ebiten.Vertex, []uint16) {
	rot = math.Mod(rot, 2*math.Pi)
	base := uint16(len(vs))
	vs = append(vs, discVertex(cx, cy, r, 0, 0, rot, texW, texH, shade))

	for ring := 1; ring <= discRings; ring++ {
		rho := float64(ring) / discRings
		for seg := 0; seg < discSegments; seg++ {
			theta := float64(seg) / discSegments * 2 * math.Pi
			vs = append(vs, discVertex(cx, cy, r, rho, theta, rot, texW, texH, shade))
		}
	}

	at := func(ring, seg int) uint16 {
		return base + 1 + uint16((ring-1)*discSegments+seg%discSegments)
	}
	for seg := 0; seg < discSegments; seg++ {
		is = append(is, base, at(1, seg), at(1, seg+1))
	}
	for ring := 1; ring < discRings; ring++ {
		for seg := 0; seg < discSegments; seg++ {
			a, b := at(ring, seg), at(ring, seg+1)
			c, d := at(ring+1, seg), at(ring+1, seg+1)
			is = append(is, a, c, b, b, c, d)
		}
	}
	return vs, is
}

func discVertex(cx, cy, r, rho, theta, rot float64, texW, texH int, shade [3]float32) ebiten.Vertex {
	x := rho * math.Cos(theta)
	y := rho * math.Sin(theta)
	z := math.Sqrt(math.Max(0, 1-x*x-y*y))

	lon := math.Atan2(x, z) + rot
	lat := math.Asin(math.Max(-1, math.Min(1, y)))
	limb := float32(0.55 + 0.45*z)

	return ebiten.Vertex{
		DstX:   float32(cx + r*x),
		DstY:   float32(cy + r*y),
		SrcX:   float32(lon / (2 * math.Pi) * float64(texW)),
		SrcY:   float32((lat/math.Pi + 0.5) * float64(texH-1)),
		ColorR: shade[0] * limb,
		ColorG: shade[1] * limb,
		ColorB: shade[2] * limb,
		ColorA: 1,
	}
}
