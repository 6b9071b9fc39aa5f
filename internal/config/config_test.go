package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/APeffer/fidgetball/internal/core"
	"github.com/APeffer/fidgetball/internal/sim"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and no config files in cwd of the test binary, so the
	// embedded default applies.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.Bounciness != 0.70 {
		t.Errorf("expected default bounciness 0.70, got %f", cfg.Physics.Bounciness)
	}
	if cfg.Feedback.PitchHz != 800 {
		t.Errorf("expected default pitch 800, got %f", cfg.Feedback.PitchHz)
	}
	if cfg.Motion.Source != "auto" {
		t.Errorf("expected default source auto, got %q", cfg.Motion.Source)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
physics:
  bounciness: 0.90
  friction_display: 3
feedback:
  pitch_hz: 1200
  channel: haptic
ball:
  color: magenta
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Physics.Bounciness != 0.90 {
		t.Errorf("expected bounciness 0.90, got %f", cfg.Physics.Bounciness)
	}
	if cfg.Feedback.Channel != "haptic" {
		t.Errorf("expected haptic channel, got %q", cfg.Feedback.Channel)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestToSimConfigClamps(t *testing.T) {
	cfg := ToyConfig{
		Physics:  PhysicsConfig{Bounciness: 5.0, FrictionDisplay: -3},
		Feedback: FeedbackConfig{PitchHz: 99999, Channel: "audio"},
	}

	sc := cfg.ToSimConfig()
	if sc.Bounciness != sim.MaxBounciness {
		t.Errorf("expected bounciness clamped to %f, got %f", sim.MaxBounciness, sc.Bounciness)
	}
	if sc.FrictionDisplay != sim.MinFrictionDisplay {
		t.Errorf("expected friction clamped to %d, got %d", sim.MinFrictionDisplay, sc.FrictionDisplay)
	}
	if sc.PitchHz != sim.MaxPitchHz {
		t.Errorf("expected pitch clamped to %f, got %f", sim.MaxPitchHz, sc.PitchHz)
	}
}

func TestToSimConfigChannelAndColor(t *testing.T) {
	cfg := DefaultToyConfig()
	cfg.Feedback.Channel = "haptic"
	cfg.Ball.Color = "magenta"

	sc := cfg.ToSimConfig()
	if sc.Channel != sim.ChannelHaptic {
		t.Errorf("expected haptic channel, got %v", sc.Channel)
	}
	if sc.BallColor != core.ColorMagenta {
		t.Errorf("expected magenta ball, got %v", sc.BallColor)
	}
}

func TestRadiusFallback(t *testing.T) {
	cfg := ToyConfig{}
	if cfg.Radius() != 0.5 {
		t.Errorf("expected fallback radius 0.5, got %f", cfg.Radius())
	}
	cfg.Physics.Radius = 1.5
	if cfg.Radius() != 1.5 {
		t.Errorf("expected radius 1.5, got %f", cfg.Radius())
	}
}
