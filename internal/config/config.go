// Package config loads the program configuration: built-in defaults, an
// optional YAML file, then .env and environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/solar/internal/randfield"
	"github.com/olivierh59500/solar/internal/universe"
)

// Config is the full program configuration.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Scene    SceneConfig    `yaml:"scene"`
	Controls ControlsConfig `yaml:"controls"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig sizes the ebiten window.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

// SceneConfig seeds the scene and sets its intro.
type SceneConfig struct {
	// Seed 0 means "seed from the clock" unless SeedPhrase is set.
	Seed         int64   `yaml:"seed"`
	SeedPhrase   string  `yaml:"seed_phrase"`
	IntroSeconds float64 `yaml:"intro_seconds"`
	SkipIntro    bool    `yaml:"skip_intro"`
	Prompt       string  `yaml:"prompt"`
	Title        string  `yaml:"title"`
	Subtitle     string  `yaml:"subtitle"`
}

// ControlsConfig holds the initial control panel values.
type ControlsConfig struct {
	TimeScale      float64 `yaml:"time_scale"`
	Entropy        float64 `yaml:"entropy"`
	Colorfulness   float64 `yaml:"colorfulness"`
	FollowDistance float64 `yaml:"follow_distance"`
	TrackColor     string  `yaml:"track_color"`
}

// AssetsConfig paths are relative to Dir unless absolute.
type AssetsConfig struct {
	Dir          string `yaml:"dir"`
	NamesFile    string `yaml:"names_file"`
	TextureDir   string `yaml:"texture_dir"`
	TextureCount int    `yaml:"texture_count"`
	SunTexture   string `yaml:"sun_texture"`
	FontFile     string `yaml:"font_file"`
	MusicFile    string `yaml:"music_file"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	JSONFormat bool   `yaml:"json_format"`
}

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Default returns the built-in configuration.
func Default() *Config {
	ctrl := universe.DefaultControls()
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Solar",
		},
		Scene: SceneConfig{
			IntroSeconds: 15,
		},
		Controls: ControlsConfig{
			TimeScale:      ctrl.TimeScale,
			Entropy:        ctrl.Entropy,
			Colorfulness:   ctrl.Colorfulness,
			FollowDistance: ctrl.FollowDistance,
			TrackColor:     ctrl.TrackColor,
		},
		Assets: AssetsConfig{
			Dir:          "assets",
			NamesFile:    "Data/Names.txt",
			TextureDir:   "Pictures",
			TextureCount: 16,
			SunTexture:   "Pictures/Sun.jpg",
			FontFile:     "Font/Quicksand.ttf",
			MusicFile:    "Sound/BGM.ogg",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration. path may be empty to skip the YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables", "component", "config")
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	if v := GetEnv("SOLAR_SEED", ""); v != "" {
		if c.Scene.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("SOLAR_SEED: %w", err)
		}
	}
	c.Scene.SeedPhrase = GetEnv("SOLAR_SEED_PHRASE", c.Scene.SeedPhrase)
	if v := GetEnv("SOLAR_SKIP_INTRO", ""); v != "" {
		if c.Scene.SkipIntro, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("SOLAR_SKIP_INTRO: %w", err)
		}
	}
	c.Assets.Dir = GetEnv("SOLAR_ASSETS_DIR", c.Assets.Dir)
	c.Logging.Level = GetEnv("LOG_LEVEL", c.Logging.Level)
	if v := GetEnv("LOG_JSON", ""); v != "" {
		if c.Logging.JSONFormat, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("LOG_JSON: %w", err)
		}
	}
	return nil
}

// Validate checks ranges and formats.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return &ValidationError{Field: "window", Message: "width and height must be positive"}
	}
	if c.Scene.IntroSeconds < 0 {
		return &ValidationError{Field: "scene.intro_seconds", Message: "must not be negative"}
	}

	ranges := []struct {
		field  string
		v      float64
		lo, hi float64
	}{
		{"controls.time_scale", c.Controls.TimeScale, universe.MinTimeScale, universe.MaxTimeScale},
		{"controls.entropy", c.Controls.Entropy, universe.MinEntropy, universe.MaxEntropy},
		{"controls.colorfulness", c.Controls.Colorfulness, universe.MinColorfulness, universe.MaxColorfulness},
		{"controls.follow_distance", c.Controls.FollowDistance, universe.MinFollowDistance, universe.MaxFollowDistance},
	}
	for _, r := range ranges {
		if r.v < r.lo || r.v > r.hi {
			return &ValidationError{Field: r.field, Message: fmt.Sprintf("%v outside [%v, %v]", r.v, r.lo, r.hi)}
		}
	}
	if _, err := universe.ParseHexColor(c.Controls.TrackColor); err != nil {
		return &ValidationError{Field: "controls.track_color", Message: err.Error()}
	}

	if c.Assets.TextureCount < 0 {
		return &ValidationError{Field: "assets.texture_count", Message: "must not be negative"}
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}
	return nil
}

// ResolveSeed picks the generation seed: an explicit seed wins, then the
// seed phrase, then the clock.
func (c *Config) ResolveSeed() int64 {
	switch {
	case c.Scene.Seed != 0:
		return c.Scene.Seed
	case c.Scene.SeedPhrase != "":
		return randfield.SeedFromPhrase(c.Scene.SeedPhrase)
	default:
		return randfield.TimeSeed()
	}
}

// InitialControls converts the control section into panel values.
func (c *Config) InitialControls() universe.Controls {
	return universe.Controls{
		TimeScale:      c.Controls.TimeScale,
		Entropy:        c.Controls.Entropy,
		Colorfulness:   c.Controls.Colorfulness,
		FollowDistance: c.Controls.FollowDistance,
		TrackColor:     c.Controls.TrackColor,
	}
}

// GetEnv returns the environment value of key, or fallback when unset.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
