package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/solar/internal/assets"
	"github.com/olivierh59500/solar/internal/audio"
	"github.com/olivierh59500/solar/internal/config"
	"github.com/olivierh59500/solar/internal/game"
	"github.com/olivierh59500/solar/internal/logger"
	"github.com/olivierh59500/solar/internal/render"
	"github.com/olivierh59500/solar/internal/scene"
	"github.com/olivierh59500/solar/internal/universe"
)

type flags struct {
	configPath string
	seed       int64
	seedPhrase string
	skipIntro  bool
	logLevel   string
	width      int
	height     int
	fullscreen bool
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "solar",
		Short:         "Procedurally generated solar system",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, f, cfg); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fl.Int64Var(&f.seed, "seed", 0, "generation seed (0 seeds from the clock)")
	fl.StringVar(&f.seedPhrase, "seed-phrase", "", "derive the seed from a phrase")
	fl.BoolVar(&f.skipIntro, "skip-intro", false, "start without the intro fade")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.IntVar(&f.width, "width", 0, "window width")
	fl.IntVar(&f.height, "height", 0, "window height")
	fl.BoolVar(&f.fullscreen, "fullscreen", false, "run fullscreen")
	return cmd
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, f flags, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Scene.Seed = f.seed
	}
	if changed("seed-phrase") {
		cfg.Scene.SeedPhrase = f.seedPhrase
	}
	if changed("skip-intro") {
		cfg.Scene.SkipIntro = f.skipIntro
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("width") {
		cfg.Window.Width = f.width
	}
	if changed("height") {
		cfg.Window.Height = f.height
	}
	if changed("fullscreen") {
		cfg.Window.Fullscreen = f.fullscreen
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

func run(cfg *config.Config) error {
	logger.Init(cfg.Logging)

	seed := cfg.ResolveSeed()
	catalog, err := assets.Load(cfg.Assets, seed)
	if err != nil {
		return err
	}

	music, err := audio.Open(catalog.MusicPath)
	if err != nil {
		return err
	}
	defer music.Close()

	sc := scene.New(scene.Options{
		Seed:         seed,
		IntroSeconds: cfg.Scene.IntroSeconds,
		SkipIntro:    cfg.Scene.SkipIntro,
		Controls:     cfg.InitialControls(),
		Catalog:      catalog.Universe(),
		Prompt:       cfg.Scene.Prompt,
		Title:        cfg.Scene.Title,
		Subtitle:     cfg.Scene.Subtitle,
	})
	g := game.New(cfg.Window.Width, cfg.Window.Height, sc, render.New(catalog), music)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(universe.DefaultGlobalSettings().FPS)

	// Run the game loop
	return ebiten.RunGame(g)
}
