// Package feedback produces the user-perceptible blip or pulse for a wall
// approach: a short synthesized tone on the audio channel, or a host haptic
// pulse with audio fallback. Every failure path degrades silently; nothing
// here can stall the frame loop.
package feedback

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// blipDuration is the total length of one blip; by its end the tone has
	// glided down an octave and decayed to near-silence.
	blipDuration = 100 * time.Millisecond

	blipGain = 0.25
)

// blip is a beep.Streamer generating a short tone: start frequency equal to
// the configured pitch, exponential glide to half that frequency, and
// exponential amplitude decay. Synthesized fresh on each call, no pooling.
type blip struct {
	startHz float64
	pos     int
	total   int
	phase   float64
}

func newBlip(pitchHz float64) *blip {
	return &blip{
		startHz: pitchHz,
		total:   sampleRate.N(blipDuration),
	}
}

func (g *blip) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}

	dur := blipDuration.Seconds()
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}

		t := float64(g.pos) / float64(sampleRate)

		// Octave glide: startHz at t=0, startHz/2 at t=dur.
		freq := g.startHz * math.Pow(0.5, t/dur)
		g.phase += freq / float64(sampleRate)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}

		// exp(-6) leaves ~0.2% amplitude at the end of the blip.
		env := math.Exp(-6 * t / dur)
		sample := blipGain * env * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blip) Err() error { return nil }

// AudioSink owns the speaker and mixes blips into it. Until Init has run
// (which requires a user gesture, like the browser's audio-context rule),
// Play is a silent no-op; it never raises.
type AudioSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewAudioSink creates an uninitialized sink.
func NewAudioSink() *AudioSink {
	return &AudioSink{mixer: &beep.Mixer{}}
}

// Init sets up the speaker. Safe to call repeatedly; only the first call
// does work. Errors leave the sink uninitialized (silent operation).
func (s *AudioSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Ready reports whether the speaker has been initialized.
func (s *AudioSink) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Play synthesizes and mixes a fresh blip at the given pitch.
func (s *AudioSink) Play(pitchHz float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Add(newBlip(pitchHz))
	speaker.Unlock()
}
