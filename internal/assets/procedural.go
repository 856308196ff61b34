package assets

import (
	"image"
	"image/color"
	"math"

	"github.com/olivierh59500/solar/internal/randfield"
)

// PlanetTexture paints a banded gas-giant texture for texture index i of
// count. Hues are spread evenly over the color wheel by index.
func PlanetTexture(seed int64, i, count, w, h int) *image.RGBA {
	field := randfield.New(seed + int64(i) + 1)
	hue := 0.0
	if count > 0 {
		hue = float64(i) / float64(count) * 360
	}
	bands := 6 + field.Float64()*10
	swirl := 1 + field.Float64()*3

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w)
			v := float64(y) / float64(h)
			n := field.Noise2D(u*swirl*4, v*bands)
			t := 0.5 + 0.5*math.Sin(v*bands*math.Pi+n*3)
			r, g, b := hsvToRGB(hue+n*25, 0.35+0.4*t, 0.45+0.5*t)
			img.SetRGBA(x, y, rgba(r, g, b))
		}
	}
	return img
}

// SunTexture paints a mottled, bright surface. The scene tints it with
// the light color.
func SunTexture(seed int64, w, h int) *image.RGBA {
	field := randfield.New(seed ^ 0x5f3759df)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x) / float64(w)
			v := float64(y) / float64(h)
			n := field.Noise2D(u*12, v*6)
			r, g, b := hsvToRGB(40+n*15, 0.15+0.2*math.Abs(n), 0.85+0.15*n)
			img.SetRGBA(x, y, rgba(r, g, b))
		}
	}
	return img
}

func rgba(r, g, b float64) color.RGBA {
	return color.RGBA{unit(r), unit(g), unit(b), 255}
}

func unit(v float64) uint8 {
	return uint8(math.Max(0, math.Min(1, v)) * 255)
}

// hsvToRGB helper
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return r + m, g + m, b + m
}
