package motion

import (
	"context"
	"math"
	"time"
)

const demoSourceID = "demo"

// Demo signal tuning: two out-of-phase sinusoids with distinct angular
// frequencies, so the ball drifts in a lazy Lissajous-like pattern without
// real input. Amplitude is bounded at 0.02 on both axes.
const (
	demoAmplitude = 0.02
	demoFreqX     = 0.9  // rad/s
	demoFreqY     = 0.55 // rad/s
)

// Demo produces a deterministic synthetic tilt vector as a function of
// elapsed wall-clock time. It is selected automatically whenever live
// permission has not been granted.
type Demo struct {
	epoch time.Time
}

// NewDemo creates a demo source anchored at the given epoch.
func NewDemo(epoch time.Time) *Demo {
	return &Demo{epoch: epoch}
}

// SampleAt returns the synthetic vector for a given elapsed duration.
// Split out from Latest so the signal's bounds and determinism are testable
// without a real clock.
func (d *Demo) SampleAt(elapsed time.Duration) Vector {
	t := elapsed.Seconds()
	return Vector{
		X: demoAmplitude * math.Sin(t*demoFreqX),
		Y: demoAmplitude * math.Cos(t*demoFreqY),
	}
}

// Latest returns the synthetic vector for the current time.
func (d *Demo) Latest() Vector {
	return d.SampleAt(time.Since(d.epoch))
}

// ID implements Source.
func (d *Demo) ID() string { return demoSourceID }

// Granted implements Source. The demo source never has live permission.
func (d *Demo) Granted() bool { return false }

// Start implements Source. The demo signal needs no background production.
func (d *Demo) Start(_ context.Context) error { return nil }

// Close implements Source.
func (d *Demo) Close() error { return nil }

func init() {
	Register(demoSourceID, "Synthetic Lissajous drift (no device needed)", func(Options) (Source, error) {
		return NewDemo(time.Now()), nil
	})
}
