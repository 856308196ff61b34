package draw

import (
	"image/color"
	"testing"
)

func TestLerpEndpoints(t *testing.T) {
	bg := Opaque(color.RGBA{R: 3, G: 4, B: 5, A: 0xff})
	if got := Lerp(White, bg, 0); got != White {
		t.Errorf("Lerp(t=0) = %v, want white", got)
	}
	if got := Lerp(White, bg, 1); got != bg {
		t.Errorf("Lerp(t=1) = %v, want %v", got, bg)
	}
	mid := Lerp(White, Black, 0.5)
	if mid.R < 126 || mid.R > 129 {
		t.Errorf("Lerp(t=0.5).R = %d, want about 127", mid.R)
	}
}

func TestListCountAndReset(t *testing.T) {
	var l List
	l.Add(Clear{Color: Black}, Sphere{Radius: 1}, Sphere{Radius: 2}, Label{Text: "x"})
	if n := Count[Sphere](&l); n != 2 {
		t.Errorf("Count[Sphere] = %d, want 2", n)
	}
	if n := Count[Ring](&l); n != 0 {
		t.Errorf("Count[Ring] = %d, want 0", n)
	}
	l.Reset()
	if len(l.Items) != 0 {
		t.Errorf("Reset left %d items", len(l.Items))
	}
}
