package main

import (
	"testing"

	"github.com/olivierh59500/solar/internal/config"
)

func TestApplyFlags(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--seed", "12", "--skip-intro", "--width", "640"}); err != nil {
		t.Fatal(err)
	}
	f := flags{seed: 12, skipIntro: true, width: 640}
	cfg := config.Default()
	if err := applyFlags(cmd, f, cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Scene.Seed != 12 || !cfg.Scene.SkipIntro || cfg.Window.Width != 640 {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.Window.Height != config.Default().Window.Height {
		t.Error("unset flag overrode height")
	}
}

func TestApplyFlagsValidates(t *testing.T) {
	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--log-level", "chatty"}); err != nil {
		t.Fatal(err)
	}
	if err := applyFlags(cmd, flags{logLevel: "chatty"}, config.Default()); err == nil {
		t.Error("expected a validation error")
	}
}
