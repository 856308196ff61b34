package universe

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/olivierh59500/solar/internal/randfield"
)

// GlobalSettings are the view-wide constants.
type GlobalSettings struct {
	FPS         int
	FOV         float64 // vertical field of view, radians
	UIDistance  float64 // gap between a body and its label
	UISize      float64 // label text size
	NearPlane   float64
	FarPlane    float64
	Sensitivity mgl64.Vec3 // mouse orbit sensitivity per axis
}

// StarFieldSettings tune the background star field.
type StarFieldSettings struct {
	DetailLevel   int
	MapSize       float64 // half-width of the field is MapSize*100
	MaxDiameter   float64
	Amount        float64
	MoveIntensity float64 // upper bound of the per-frame noise cursor step
	MoveSpeed     float64 // upper bound of the per-frame drift on each axis
}

// PlanetSettings tune planet placement and motion.
type PlanetSettings struct {
	DetailLevel   int
	MaxDiameter   float64
	MaxOrbitSpeed float64 // self-rotation
	MaxDistance   float64 // max gap between neighbouring planet surfaces
	MaxSpeed      float64 // orbital, per second
	Amount        float64
	AmbientLight  float64
}

// TrackSettings tune the orbit rings.
type TrackSettings struct {
	DetailLevel  int
	TubeDiameter float64
	Opacity      uint8
	Color        color.RGBA
}

// MainStarSettings tune the central star, which is also the light source.
type MainStarSettings struct {
	DetailLevel   int
	MaxDiameter   float64
	MaxOrbitSpeed float64
	Position      mgl64.Vec3
	LightColor    mgl64.Vec3 // per channel in [0, colorfulness*225]
}

// Settings is the immutable bag of tunables for one generation.
type Settings struct {
	Global    GlobalSettings
	StarField StarFieldSettings
	Planet    PlanetSettings
	Track     TrackSettings
	MainStar  MainStarSettings
}

// DefaultGlobalSettings returns the view constants.
func DefaultGlobalSettings() GlobalSettings {
	return GlobalSettings{
		FPS:         40,
		FOV:         1.8,
		UIDistance:  8,
		UISize:      15,
		NearPlane:   0.01,
		FarPlane:    10000,
		Sensitivity: mgl64.Vec3{2, 2, 2},
	}
}

// NewSettings derives a generation's settings from the control values.
// The light color consumes three samples from field.
func NewSettings(ctrl Controls, field *randfield.Field) *Settings {
	ctrl = ctrl.Clamp()
	e := ctrl.Entropy

	trackColor, err := ParseHexColor(ctrl.TrackColor)
	if err != nil {
		trackColor, _ = ParseHexColor(DefaultTrackColor)
	}

	ceiling := ctrl.Colorfulness * 225
	return &Settings{
		Global: DefaultGlobalSettings(),
		StarField: StarFieldSettings{
			DetailLevel:   4,
			MapSize:       40,
			MaxDiameter:   10,
			Amount:        500,
			MoveIntensity: 0.02,
			MoveSpeed:     e * 0.8,
		},
		Planet: PlanetSettings{
			DetailLevel:   40,
			MaxDiameter:   e * 40,
			MaxOrbitSpeed: 2.5,
			MaxDistance:   e * 300,
			MaxSpeed:      1.5,
			Amount:        e * 15,
			AmbientLight:  17,
		},
		Track: TrackSettings{
			DetailLevel:  80,
			TubeDiameter: 0.5,
			Opacity:      20,
			Color:        trackColor,
		},
		MainStar: MainStarSettings{
			DetailLevel:   40,
			MaxDiameter:   e * 200,
			MaxOrbitSpeed: 2,
			Position:      mgl64.Vec3{0, 0, 0},
			LightColor: mgl64.Vec3{
				field.Range(0, ceiling),
				field.Range(0, ceiling),
				field.Range(0, ceiling),
			},
		},
	}
}

// LightRGBA returns the main star's light as a displayable color.
func (s *Settings) LightRGBA() color.RGBA {
	return color.RGBA{
		R: channel(s.MainStar.LightColor[0]),
		G: channel(s.MainStar.LightColor[1]),
		B: channel(s.MainStar.LightColor[2]),
		A: 0xff,
	}
}

// BackgroundColor is a very dark shade of the light: each channel of the
// light is mapped from [0, 255] onto [0, 5].
func (s *Settings) BackgroundColor() color.RGBA {
	return color.RGBA{
		R: channel(remap(s.MainStar.LightColor[0], 0, 255, 0, 5)),
		G: channel(remap(s.MainStar.LightColor[1], 0, 255, 0, 5)),
		B: channel(remap(s.MainStar.LightColor[2], 0, 255, 0, 5)),
		A: 0xff,
	}
}

// StarColor is the emissive tint of background stars: the light mapped
// from [0, 255] onto [200, 255].
func (s *Settings) StarColor() color.RGBA {
	return color.RGBA{
		R: channel(remap(s.MainStar.LightColor[0], 0, 255, 200, 255)),
		G: channel(remap(s.MainStar.LightColor[1], 0, 255, 200, 255)),
		B: channel(remap(s.MainStar.LightColor[2], 0, 255, 200, 255)),
		A: 0xff,
	}
}

// TrackNRGBA is the ring color with the track opacity applied.
func (s *Settings) TrackNRGBA() color.NRGBA {
	c := s.Track.Color
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: s.Track.Opacity}
}

// remap linearly maps v from [a0, a1] onto [b0, b1] without clamping.
func remap(v, a0, a1, b0, b1 float64) float64 {
	return b0 + (v-a0)*(b1-b0)/(a1-a0)
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
