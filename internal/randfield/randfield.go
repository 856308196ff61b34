// Package randfield provides the seeded random and noise source shared by
// every generator in the scene.
package randfield

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
	"lukechampine.com/blake3"
)

// Noise parameters: four octaves, each at half the amplitude of the last.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 4
)

// Field is a seeded pseudo-random source paired with a 1-D/2-D perlin
// noise function. It is not safe for concurrent use.
type Field struct {
	seed  int64
	rng   *rand.Rand
	noise *perlin.Perlin
}

// New returns a field whose samples are fully determined by seed.
func New(seed int64) *Field {
	return &Field{
		seed:  seed,
		rng:   rand.New(rand.NewSource(seed)),
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Seed returns the seed the field was created with.
func (f *Field) Seed() int64 {
	return f.seed
}

// Float64 returns a uniform sample in [0, 1).
func (f *Field) Float64() float64 {
	return f.rng.Float64()
}

// Range returns a uniform sample in [lo, hi). Reversed bounds are
// accepted and sample the same interval.
func (f *Field) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*f.rng.Float64()
}

// Intn returns a uniform index in [0, n), or 0 when n <= 0.
func (f *Field) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return f.rng.Intn(n)
}

// Pick returns a uniformly chosen element of items, or "" when empty.
func (f *Field) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[f.rng.Intn(len(items))]
}

// Noise1D samples smooth noise at x, clamped to [-1, 1].
func (f *Field) Noise1D(x float64) float64 {
	return clampUnit(f.noise.Noise1D(x))
}

// Noise2D samples smooth noise at (x, y), clamped to [-1, 1].
func (f *Field) Noise2D(x, y float64) float64 {
	return clampUnit(f.noise.Noise2D(x, y))
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// SeedFromPhrase hashes a free-form phrase into a seed so that users can
// share universes by name.
func SeedFromPhrase(phrase string) int64 {
	sum := blake3.Sum256([]byte(phrase))
	return int64(binary.LittleEndian.Uint64(sum[:8]))
}

// TimeSeed returns a seed from the wall clock.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}
