package universe

import (
	"math"
	"testing"

	"github.com/olivierh59500/solar/internal/randfield"
)

var testCatalog = Catalog{
	Names:    []string{"Aster", "Borealis", "Cygnus", "Draco", "Eridani"},
	Textures: 16,
}

func scenarioControls() Controls {
	c := DefaultControls()
	c.Entropy = 0.5
	c.Colorfulness = 4
	return c
}

func TestGenerateCounts(t *testing.T) {
	u := Generate(scenarioControls(), randfield.New(1), testCatalog, 1)

	if len(u.Stars) != 500 {
		t.Errorf("stars = %d, want 500", len(u.Stars))
	}
	// entropy 0.5 gives an amount of 7.5, iterated while i < 7.5.
	if len(u.Planets) != 8 {
		t.Errorf("planets = %d, want 8", len(u.Planets))
	}
	if len(u.Tracks) != len(u.Planets) {
		t.Fatalf("tracks = %d, planets = %d", len(u.Tracks), len(u.Planets))
	}
	if u.MainStar == nil {
		t.Fatal("main star not created")
	}
}

func TestPlanetRadiiStrictlyIncreaseWithoutOverlap(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		ctrl := scenarioControls()
		ctrl.Entropy = 0.02 + float64(seed)*0.04
		u := Generate(ctrl, randfield.New(seed), testCatalog, 1)

		prevEdge := u.Settings.MainStar.Position[0] + u.Settings.MainStar.MaxDiameter
		prevRadius := math.Inf(-1)
		for i, p := range u.Planets {
			r := u.Tracks[i].Radius
			if r <= prevRadius {
				t.Fatalf("seed %d: radius[%d] = %v not above %v", seed, i, r, prevRadius)
			}
			// span [cursor-2d, cursor] must start at or after the previous span's end
			if lo := r - p.Diameter; lo < prevEdge {
				t.Fatalf("seed %d: planet %d span starts at %v before %v", seed, i, lo, prevEdge)
			}
			prevEdge = r + p.Diameter
			prevRadius = r
		}
	}
}

func TestTracksMatchPlanetOrbitRadius(t *testing.T) {
	u := Generate(scenarioControls(), randfield.New(3), testCatalog, 1)
	for i, p := range u.Planets {
		if p.Position[0] != u.Tracks[i].Radius {
			t.Errorf("planet %d at x=%v, track radius %v", i, p.Position[0], u.Tracks[i].Radius)
		}
		if p.Position[1] != 0 || p.Position[2] != 0 {
			t.Errorf("planet %d not on the placement axis: %v", i, p.Position)
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := Generate(scenarioControls(), randfield.New(2024), testCatalog, 1)
	b := Generate(scenarioControls(), randfield.New(2024), testCatalog, 2)

	if len(a.Stars) != len(b.Stars) || len(a.Planets) != len(b.Planets) {
		t.Fatalf("lengths differ: %d/%d stars, %d/%d planets",
			len(a.Stars), len(b.Stars), len(a.Planets), len(b.Planets))
	}
	for i := range a.Stars {
		if a.Stars[i].Position != b.Stars[i].Position || a.Stars[i].Diameter != b.Stars[i].Diameter {
			t.Fatalf("star %d differs", i)
		}
	}
	for i := range a.Planets {
		pa, pb := a.Planets[i], b.Planets[i]
		if pa.Position != pb.Position || pa.Diameter != pb.Diameter || pa.Name != pb.Name || pa.Texture != pb.Texture {
			t.Fatalf("planet %d differs: %+v vs %+v", i, pa, pb)
		}
	}
	if a.MainStar.Diameter != b.MainStar.Diameter {
		t.Error("main star diameter differs")
	}
	if a.Settings.MainStar.LightColor != b.Settings.MainStar.LightColor {
		t.Error("light color differs")
	}
}

func TestGenerateReturnsFreshEntities(t *testing.T) {
	field := randfield.New(5)
	old := Generate(scenarioControls(), field, testCatalog, 1)
	fresh := Generate(scenarioControls(), field, testCatalog, 2)

	seen := make(map[*Planet]bool, len(old.Planets))
	for _, p := range old.Planets {
		seen[p] = true
	}
	for i, p := range fresh.Planets {
		if seen[p] {
			t.Fatalf("planet %d reused from the previous universe", i)
		}
		if p.Generation != 2 || fresh.Tracks[i].Generation != 2 {
			t.Fatalf("entity %d carries generation %d", i, p.Generation)
		}
	}
	for _, s := range fresh.Stars {
		if s.Generation != 2 {
			t.Fatal("star from an old generation")
		}
	}
}

func TestStarsInsideVolume(t *testing.T) {
	u := Generate(scenarioControls(), randfield.New(8), testCatalog, 1)
	half := u.Settings.StarField.MapSize * 100
	for i, s := range u.Stars {
		for axis := 0; axis < 3; axis++ {
			if math.Abs(s.Position[axis]) > half {
				t.Fatalf("star %d outside the field: %v", i, s.Position)
			}
		}
		if s.Diameter < 0 || s.Diameter > u.Settings.StarField.MaxDiameter {
			t.Fatalf("star %d diameter %v", i, s.Diameter)
		}
	}
}

func TestMainStarDiameterRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		u := Generate(scenarioControls(), randfield.New(seed), testCatalog, 1)
		lo, hi := u.Settings.Planet.MaxDiameter/2, u.Settings.MainStar.MaxDiameter
		if d := u.MainStar.Diameter; d < lo || d > hi {
			t.Fatalf("seed %d: main star diameter %v outside [%v, %v]", seed, d, lo, hi)
		}
		if u.MainStar.Position != u.Settings.MainStar.Position {
			t.Fatal("main star not at the configured position")
		}
	}
}

func TestGenerateWithEmptyCatalog(t *testing.T) {
	u := Generate(scenarioControls(), randfield.New(4), Catalog{}, 1)
	for _, p := range u.Planets {
		if p.Name != "" || p.Texture != 0 {
			t.Fatalf("planet got %q/%d from an empty catalog", p.Name, p.Texture)
		}
	}
}

func TestPlanetOrbitSpeedPerFrame(t *testing.T) {
	u := Generate(scenarioControls(), randfield.New(11), testCatalog, 1)
	limit := u.Settings.Planet.MaxSpeed / float64(u.Settings.Global.FPS)
	for i, p := range u.Planets {
		if math.Abs(p.Speed) > limit {
			t.Errorf("planet %d speed %v above %v", i, p.Speed, limit)
		}
		if p.Texture < 0 || p.Texture >= testCatalog.Textures {
			t.Errorf("planet %d texture %d", i, p.Texture)
		}
	}
}
