package universe

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/olivierh59500/solar/internal/randfield"
)

// Generate builds a complete universe from the control values. Every call
// returns brand-new entities; nothing from a previous universe is reused.
// The samples drawn from field follow a fixed order, so equal seeds and
// controls produce equal universes.
func Generate(ctrl Controls, field *randfield.Field, cat Catalog, generation uint64) *Universe {
	set := NewSettings(ctrl, field)
	u := &Universe{
		Generation: generation,
		Settings:   set,
	}

	u.Stars = generateStars(set, field, generation)
	u.Planets, u.Tracks = generatePlanets(set, field, cat, generation)
	u.MainStar = generateMainStar(set, field, cat, generation)

	slog.Debug("universe generated",
		"component", "universe",
		"generation", generation,
		"seed", field.Seed(),
		"stars", len(u.Stars),
		"planets", len(u.Planets),
		"main_star", u.MainStar.Name,
	)
	return u
}

// count turns a fractional amount into the number of iterations of
// "for i := 0; i < amount; i++".
func count(amount float64) int {
	if amount <= 0 || math.IsNaN(amount) {
		return 0
	}
	return int(math.Ceil(amount))
}

func generateStars(set *Settings, field *randfield.Field, generation uint64) []*Star {
	n := count(set.StarField.Amount)
	half := set.StarField.MapSize * 100
	stars := make([]*Star, 0, n)
	for i := 0; i < n; i++ {
		x := field.Range(-half, half)
		y := field.Range(-half, half)
		z := field.Range(-half, half)
		stars = append(stars, &Star{
			Position:   mgl64.Vec3{x, y, z},
			Diameter:   field.Range(0, set.StarField.MaxDiameter),
			Generation: generation,
		})
	}
	return stars
}

// generatePlanets lines planets up along +x. The cursor starts past the
// largest possible main star and each planet advances it by its own width
// plus a random gap, so radii strictly increase and neighbours never
// overlap.
func generatePlanets(set *Settings, field *randfield.Field, cat Catalog, generation uint64) ([]*Planet, []*Track) {
	n := count(set.Planet.Amount)
	planets := make([]*Planet, 0, n)
	tracks := make([]*Track, 0, n)

	star := set.MainStar.Position
	cursor := star[0] + set.MainStar.MaxDiameter
	for i := 0; i < n; i++ {
		d := field.Range(0, set.Planet.MaxDiameter)
		cursor += d*2 + field.Range(0, set.Planet.MaxDistance)
		radius := cursor - d

		planets = append(planets, &Planet{
			Position:   mgl64.Vec3{radius, star[1], star[2]},
			Diameter:   d,
			Name:       field.Pick(cat.Names),
			Texture:    field.Intn(cat.Textures),
			OrbitSpeed: field.Range(0, set.Planet.MaxOrbitSpeed),
			Speed:      field.Range(-set.Planet.MaxSpeed, set.Planet.MaxSpeed) / float64(set.Global.FPS),
			Generation: generation,
		})
		tracks = append(tracks, &Track{Radius: radius, Generation: generation})
	}
	return planets, tracks
}

func generateMainStar(set *Settings, field *randfield.Field, cat Catalog, generation uint64) *MainStar {
	return &MainStar{
		Position:   set.MainStar.Position,
		Diameter:   field.Range(set.Planet.MaxDiameter/2, set.MainStar.MaxDiameter),
		Name:       field.Pick(cat.Names),
		OrbitSpeed: field.Range(0, set.MainStar.MaxOrbitSpeed),
		Generation: generation,
	}
}
