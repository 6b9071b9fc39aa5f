package sim

import (
	"math"
	"testing"
)

func TestFrictionCoefficient(t *testing.T) {
	tests := []struct {
		name    string
		display int
		want    float64
	}{
		{"dial 0 is near-frictionless", 0, 0.9999},
		{"dial 20 is grippiest", 20, 0.998},
		{"dial 10 is midway", 10, 0.99895},
		{"below range clamps to 0", -5, 0.9999},
		{"above range clamps to 20", 99, 0.998},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{FrictionDisplay: tt.display}
			got := cfg.FrictionCoefficient()
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("FrictionCoefficient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAdjustBounciness(t *testing.T) {
	cfg := DefaultSimConfig()

	cfg.Bounciness = MaxBounciness
	cfg.AdjustBounciness(BounceStep)
	if cfg.Bounciness != MaxBounciness {
		t.Errorf("bounciness exceeded max: %v", cfg.Bounciness)
	}

	cfg.Bounciness = MinBounciness
	cfg.AdjustBounciness(-BounceStep)
	if cfg.Bounciness != MinBounciness {
		t.Errorf("bounciness fell below min: %v", cfg.Bounciness)
	}

	cfg.Bounciness = 0.50
	cfg.AdjustBounciness(BounceStep)
	if math.Abs(cfg.Bounciness-0.52) > 1e-12 {
		t.Errorf("bounciness = %v, want 0.52", cfg.Bounciness)
	}
}

func TestAdjustFriction(t *testing.T) {
	cfg := DefaultSimConfig()

	cfg.FrictionDisplay = MaxFrictionDisplay
	cfg.AdjustFriction(1)
	if cfg.FrictionDisplay != MaxFrictionDisplay {
		t.Errorf("dial exceeded max: %d", cfg.FrictionDisplay)
	}

	cfg.FrictionDisplay = MinFrictionDisplay
	cfg.AdjustFriction(-1)
	if cfg.FrictionDisplay != MinFrictionDisplay {
		t.Errorf("dial fell below min: %d", cfg.FrictionDisplay)
	}
}

func TestAdjustPitch(t *testing.T) {
	cfg := DefaultSimConfig()

	cfg.PitchHz = MaxPitchHz
	cfg.AdjustPitch(PitchStep)
	if cfg.PitchHz != MaxPitchHz {
		t.Errorf("pitch exceeded max: %v", cfg.PitchHz)
	}

	cfg.PitchHz = MinPitchHz
	cfg.AdjustPitch(-PitchStep)
	if cfg.PitchHz != MinPitchHz {
		t.Errorf("pitch fell below min: %v", cfg.PitchHz)
	}
}

func TestToggleChannel(t *testing.T) {
	cfg := DefaultSimConfig()
	if cfg.Channel != ChannelAudio {
		t.Fatalf("default channel = %v, want audio", cfg.Channel)
	}

	cfg.ToggleChannel()
	if cfg.Channel != ChannelHaptic {
		t.Errorf("channel = %v, want haptic", cfg.Channel)
	}

	cfg.ToggleChannel()
	if cfg.Channel != ChannelAudio {
		t.Errorf("channel = %v, want audio", cfg.Channel)
	}
}
