package assets

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestParseNames(t *testing.T) {
	names := ParseNames(strings.NewReader("Vega\n\n  Rigel  \r\nDeneb\n"))
	want := []string{"Vega", "Rigel", "Deneb"}
	if len(names) != len(want) {
		t.Fatalf("names = %q", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestEmbeddedNames(t *testing.T) {
	names := ParseNames(bytes.NewReader(defaultNames))
	if len(names) < 20 {
		t.Fatalf("only %d built-in names", len(names))
	}
}

func TestResolve(t *testing.T) {
	if got := resolve("assets", "Data/Names.txt"); got != "assets/Data/Names.txt" {
		t.Errorf("resolve = %q", got)
	}
	if got := resolve("assets", "/abs/font.ttf"); got != "/abs/font.ttf" {
		t.Errorf("absolute path rewritten: %q", got)
	}
	if got := resolve("assets", ""); got != "" {
		t.Errorf("empty path resolved to %q", got)
	}
}

func TestPlanetTextureDeterministic(t *testing.T) {
	a := PlanetTexture(9, 3, 16, 32, 16)
	b := PlanetTexture(9, 3, 16, 32, 16)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed produced different textures")
	}
	c := PlanetTexture(9, 4, 16, 32, 16)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("different indices produced identical textures")
	}
	if a.Bounds().Dx() != 32 || a.Bounds().Dy() != 16 {
		t.Errorf("bounds = %v", a.Bounds())
	}
}

func TestSunTextureIsBright(t *testing.T) {
	img := SunTexture(1, 16, 8)
	var sum float64
	for i := 0; i < len(img.Pix); i += 4 {
		sum += float64(img.Pix[i]) + float64(img.Pix[i+1]) + float64(img.Pix[i+2])
	}
	if avg := sum / float64(len(img.Pix)/4*3); avg < 150 {
		t.Errorf("average channel %v, want a bright surface", avg)
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b float64
	}{
		{0, 1, 1, 1, 0, 0},
		{120, 1, 1, 0, 1, 0},
		{240, 1, 1, 0, 0, 1},
		{-120, 1, 1, 0, 0, 1},
		{0, 0, 0.5, 0.5, 0.5, 0.5},
	}
	for _, tt := range tests {
		r, g, b := hsvToRGB(tt.h, tt.s, tt.v)
		if math.Abs(r-tt.r) > 1e-9 || math.Abs(g-tt.g) > 1e-9 || math.Abs(b-tt.b) > 1e-9 {
			t.Errorf("hsvToRGB(%v, %v, %v) = %v %v %v", tt.h, tt.s, tt.v, r, g, b)
		}
	}
}
