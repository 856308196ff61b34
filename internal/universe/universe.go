// Package universe holds the procedural solar system: the per-generation
// settings, the entities, and the generator that populates them.
package universe

// Catalog is what the generator needs to know about loaded assets. The
// contents of textures never matter here, only how many there are.
type Catalog struct {
	Names    []string
	Textures int
}

// Universe owns one generation of entities. Tracks[i] is the orbit ring
// of Planets[i].
type Universe struct {
	Generation uint64
	Settings   *Settings
	MainStar   *MainStar
	Stars      []*Star
	Planets    []*Planet
	Tracks     []*Track
}

// Focusable reports whether i is a valid planet index.
func (u *Universe) Focusable(i int) bool {
	return u != nil && i >= 0 && i < len(u.Planets)
}
