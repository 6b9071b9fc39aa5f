package sim

import "github.com/APeffer/fidgetball/internal/core"

// Channel selects how wall-approach feedback is delivered.
type Channel int

const (
	ChannelAudio Channel = iota
	ChannelHaptic
)

// String returns the channel name as shown in the HUD.
func (c Channel) String() string {
	if c == ChannelHaptic {
		return "haptic"
	}
	return "audio"
}

// UI-level parameter ranges. The integrator itself does no validation;
// these clamps are the only guard (matching the slider ranges).
const (
	MinBounciness = 0.10
	MaxBounciness = 0.98

	MinFrictionDisplay = 0
	MaxFrictionDisplay = 20

	MinPitchHz = 200.0
	MaxPitchHz = 2000.0
)

// Adjustment steps used by the live configuration keys.
const (
	BounceStep = 0.02
	PitchStep  = 50.0
)

// Config holds the live-tunable simulation parameters. All fields are read
// at the start of each integration step; mutation happens only between
// frames on the single loop goroutine, so no locking is needed.
type Config struct {
	Bounciness      float64    // Coefficient of restitution, (0,1]
	FrictionDisplay int        // Friction dial position, 0 (near-frictionless) .. 20 (grippy)
	PitchHz         float64    // Feedback blip start frequency
	BallColor       core.Color // Display color of the ball
	Channel         Channel    // Feedback channel preference
}

// DefaultSimConfig returns the out-of-the-box tuning.
func DefaultSimConfig() Config {
	return Config{
		Bounciness:      0.70,
		FrictionDisplay: 10,
		PitchHz:         800,
		BallColor:       core.ColorCyan,
		Channel:         ChannelAudio,
	}
}

// FrictionCoefficient maps the 0-20 dial to the per-frame velocity retention
// factor in [0.998, 0.9999]. Dial 0 is near-frictionless, dial 20 is the
// grippiest the toy gets.
func (c Config) FrictionCoefficient() float64 {
	display := core.Clamp(c.FrictionDisplay, MinFrictionDisplay, MaxFrictionDisplay)
	return 0.998 + (float64(MaxFrictionDisplay-display)/float64(MaxFrictionDisplay))*0.0019
}

// AdjustBounciness moves the restitution slider by delta, clamped.
func (c *Config) AdjustBounciness(delta float64) {
	c.Bounciness = core.ClampF(c.Bounciness+delta, MinBounciness, MaxBounciness)
}

// AdjustFriction moves the friction dial by delta steps, clamped.
func (c *Config) AdjustFriction(delta int) {
	c.FrictionDisplay = core.Clamp(c.FrictionDisplay+delta, MinFrictionDisplay, MaxFrictionDisplay)
}

// AdjustPitch moves the feedback pitch by delta Hz, clamped.
func (c *Config) AdjustPitch(delta float64) {
	c.PitchHz = core.ClampF(c.PitchHz+delta, MinPitchHz, MaxPitchHz)
}

// ToggleChannel flips between the audio and haptic feedback channels.
func (c *Config) ToggleChannel() {
	if c.Channel == ChannelAudio {
		c.Channel = ChannelHaptic
	} else {
		c.Channel = ChannelAudio
	}
}
