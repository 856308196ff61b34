package universe

import "math"

// Control ranges exposed by the control panel.
const (
	MinTimeScale      = 0.0
	MaxTimeScale      = 5.0
	MinEntropy        = 0.02
	MaxEntropy        = 1.0
	MinColorfulness   = 0.0
	MaxColorfulness   = 5.0
	MinFollowDistance = 0.0
	MaxFollowDistance = 5.0

	DefaultTrackColor = "#969696"
)

// Controls holds the live values of the control panel. Time scale and
// follow distance are read every frame; the rest only when a universe is
// generated (entropy is also read when the camera is reset).
type Controls struct {
	TimeScale      float64
	Entropy        float64
	Colorfulness   float64
	FollowDistance float64
	TrackColor     string
}

// DefaultControls returns the panel's initial values.
func DefaultControls() Controls {
	return Controls{
		TimeScale:      0.5,
		Entropy:        0.5,
		Colorfulness:   4,
		FollowDistance: 0.1,
		TrackColor:     DefaultTrackColor,
	}
}

// Clamp returns c with every scalar forced into its panel range.
func (c Controls) Clamp() Controls {
	c.TimeScale = clamp(c.TimeScale, MinTimeScale, MaxTimeScale)
	c.Entropy = clamp(c.Entropy, MinEntropy, MaxEntropy)
	c.Colorfulness = clamp(c.Colorfulness, MinColorfulness, MaxColorfulness)
	c.FollowDistance = clamp(c.FollowDistance, MinFollowDistance, MaxFollowDistance)
	if c.TrackColor == "" {
		c.TrackColor = DefaultTrackColor
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
