package config

import (
	_ "embed"
)

//go:embed defaults/fidgetball.yaml
var defaultToyYAML []byte

// DefaultToyConfig returns the default toy configuration.
func DefaultToyConfig() ToyConfig {
	return ToyConfig{
		Physics: PhysicsConfig{
			Bounciness:      0.70,
			FrictionDisplay: 10,
			Radius:          0.5,
		},
		Feedback: FeedbackConfig{
			PitchHz: 800,
			Channel: "audio",
		},
		Ball: BallConfig{
			Color: "cyan",
		},
		Motion: MotionConfig{
			Source:     "auto",
			BridgeAddr: ":8137",
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by `fidgetball config`.
func DefaultYAML() []byte {
	return defaultToyYAML
}
