package feedback

import (
	"context"

	"github.com/APeffer/fidgetball/internal/host"
	"github.com/APeffer/fidgetball/internal/sim"
)

// Sink is the audio end of the emitter. *AudioSink satisfies it; tests
// substitute a recorder.
type Sink interface {
	Play(pitchHz float64)
}

// HapticCaller is the slice of the guarded host the emitter needs.
type HapticCaller interface {
	TriggerHaptic(ctx context.Context) host.CallStatus
}

// Emitter turns zone triggers into user-perceptible feedback. Channel
// selection: haptic only when the user chose it and the host advertised the
// capability; the haptic call runs detached so the loop never waits, with
// audio as the fallback on expiry or failure.
type Emitter struct {
	audio    Sink
	haptics  HapticCaller
	hapticOK bool
}

// NewEmitter creates an emitter. haptics may be nil when no host supports
// pulses; hapticOK is the result of the one-time capability query.
func NewEmitter(audio Sink, haptics HapticCaller, hapticOK bool) *Emitter {
	return &Emitter{
		audio:    audio,
		haptics:  haptics,
		hapticOK: hapticOK && haptics != nil,
	}
}

// HapticAvailable reports whether the haptic channel can be used.
func (e *Emitter) HapticAvailable() bool {
	return e.hapticOK
}

// Emit produces one feedback pulse for a wall approach. Fire-and-forget:
// the audio path is non-blocking by construction and the haptic path runs
// on its own goroutine.
func (e *Emitter) Emit(channel sim.Channel, pitchHz float64) {
	if channel == sim.ChannelHaptic && e.hapticOK {
		go e.pulseWithFallback(pitchHz)
		return
	}
	e.audio.Play(pitchHz)
}

// pulseWithFallback tries the host pulse and degrades to audio when the
// call expires or fails. Errors never reach the user.
func (e *Emitter) pulseWithFallback(pitchHz float64) {
	if e.haptics.TriggerHaptic(context.Background()) != host.CallOK {
		e.audio.Play(pitchHz)
	}
}
