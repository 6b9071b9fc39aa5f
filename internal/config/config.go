// Package config provides YAML-based configuration loading for the
// fidget ball toy.
package config

import (
	"github.com/APeffer/fidgetball/internal/core"
	"github.com/APeffer/fidgetball/internal/sim"
)

// ToyConfig contains all configuration for the fidget ball toy.
type ToyConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Feedback FeedbackConfig `yaml:"feedback"`
	Ball     BallConfig     `yaml:"ball"`
	Motion   MotionConfig   `yaml:"motion"`
}

// PhysicsConfig defines the initial physics tuning.
type PhysicsConfig struct {
	Bounciness      float64 `yaml:"bounciness"`       // restitution, 0.10..0.98
	FrictionDisplay int     `yaml:"friction_display"` // dial value, 0..20
	Radius          float64 `yaml:"radius"`           // ball radius in playfield cells
}

// FeedbackConfig defines the feedback channel and tone.
type FeedbackConfig struct {
	PitchHz float64 `yaml:"pitch_hz"` // 200..2000
	Channel string  `yaml:"channel"`  // "audio" or "haptic"
}

// BallConfig defines the ball appearance.
type BallConfig struct {
	Color string `yaml:"color"` // ANSI color name, e.g. "cyan"
}

// MotionConfig selects the tilt source.
type MotionConfig struct {
	Source     string `yaml:"source"`      // "auto", "demo", or "bridge"
	BridgeAddr string `yaml:"bridge_addr"` // listen address for the phone bridge
}

// ToSimConfig converts the loaded YAML into runtime simulation tuning.
// Out-of-range values are clamped rather than rejected, so a hand-edited
// config never prevents startup.
func (c ToyConfig) ToSimConfig() sim.Config {
	cfg := sim.DefaultSimConfig()

	cfg.Bounciness = core.ClampF(c.Physics.Bounciness, sim.MinBounciness, sim.MaxBounciness)
	cfg.FrictionDisplay = core.Clamp(c.Physics.FrictionDisplay, sim.MinFrictionDisplay, sim.MaxFrictionDisplay)
	cfg.PitchHz = core.ClampF(c.Feedback.PitchHz, sim.MinPitchHz, sim.MaxPitchHz)

	if c.Feedback.Channel == "haptic" {
		cfg.Channel = sim.ChannelHaptic
	}

	if c.Ball.Color != "" {
		if color := core.ParseColor(c.Ball.Color); color != core.ColorDefault {
			cfg.BallColor = color
		}
	}

	return cfg
}

// Radius returns the configured ball radius, falling back to a sane
// minimum for zero or negative values.
func (c ToyConfig) Radius() float64 {
	if c.Physics.Radius <= 0 {
		return 0.5
	}
	return c.Physics.Radius
}
