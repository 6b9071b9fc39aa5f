// Package toy composes the FidgetBall core: once per frame it reads the
// latest tilt sample, advances the physics integrator, updates the feedback
// zone tracker, and hands feedback off to the emitter. All state is owned by
// the single loop goroutine; the only cross-goroutine traffic is the motion
// cell and the detached host calls.
package toy

import (
	"time"

	"github.com/APeffer/fidgetball/internal/core"
	"github.com/APeffer/fidgetball/internal/motion"
	"github.com/APeffer/fidgetball/internal/sim"
)

const (
	// NudgeImpulse is the velocity kick applied by a manual nudge key.
	NudgeImpulse = 1.2

	// DefaultRadius in playfield cells. Terminal cells are coarse, so the
	// ball is a single glyph.
	DefaultRadius = 0.5
)

// TiltProvider supplies the latest tilt sample. *motion.Adapter satisfies
// it; tests substitute a scripted provider.
type TiltProvider interface {
	Latest() motion.Vector
	DemoMode() bool
}

// Emitter receives one feedback request per frame with newly-entered zones.
type Emitter interface {
	Emit(channel sim.Channel, pitchHz float64)
}

// Stats aggregates a session for the history log.
type Stats struct {
	WallHits     int
	ZoneTriggers int
	MaxSpeed     float64
	StartedAt    time.Time
}

// Toy is the simulation loop driver. It owns the Ball exclusively;
// rendering only reads it, and only the integrator writes it.
type Toy struct {
	simCfg sim.Config
	ball   sim.Ball
	extent sim.Extent
	zones  sim.ZoneTracker

	tilt    TiltProvider
	emitter Emitter

	stats  Stats
	radius float64
	paused bool
	tick   int
}

// New creates a toy with the given collaborators and initial tuning.
func New(tilt TiltProvider, emitter Emitter, simCfg sim.Config) *Toy {
	return &Toy{
		simCfg:  simCfg,
		tilt:    tilt,
		emitter: emitter,
		radius:  DefaultRadius,
	}
}

// SetRadius overrides the ball radius. Takes effect on the next first Reset;
// non-positive values are ignored.
func (t *Toy) SetRadius(r float64) {
	if r > 0 {
		t.radius = r
	}
}

// Reset initializes or resizes the playfield. On a resize the ball is
// re-clamped into the new extent with minimum displacement; it is centered
// only on the very first call.
func (t *Toy) Reset(cfg core.RuntimeConfig) {
	ext := playfieldExtent(cfg)

	first := t.extent.W == 0 && t.extent.H == 0
	t.extent = ext

	if first {
		t.ball = sim.NewBall(t.radius, t.simCfg.BallColor, ext)
		t.stats = Stats{StartedAt: time.Now()}
		t.zones.Reset()
		t.tick = 0
		return
	}

	t.ball.ClampInto(ext)
}

// playfieldExtent derives the simulation extent from the screen: one border
// cell on each side plus one HUD row at the bottom. Tiny terminals clamp to
// a minimal playable box.
func playfieldExtent(cfg core.RuntimeConfig) sim.Extent {
	w := float64(core.Max(cfg.ScreenW-2, 4))
	h := float64(core.Max(cfg.ScreenH-3, 4))
	return sim.Extent{W: w, H: h}
}

// Step advances the simulation by one frame.
func (t *Toy) Step(in core.InputFrame) core.StepResult {
	t.handleInput(in)

	if t.paused {
		return core.StepResult{State: t.State()}
	}
	t.tick++

	tilt := t.tilt.Latest()

	ball, collisions := sim.Step(t.ball, tilt.X, tilt.Y, t.simCfg, t.extent)
	t.ball = ball

	t.stats.WallHits += len(collisions)
	if s := t.ball.Speed(); s > t.stats.MaxSpeed {
		t.stats.MaxSpeed = s
	}

	// Feedback fires on zone entry, not on physical contact. Multiple sides
	// entered in one frame (corner) are coalesced into a single pulse but
	// each counts as a trigger.
	fired := t.zones.Update(t.ball, t.extent, sim.ZoneMargin)
	if len(fired) > 0 {
		t.stats.ZoneTriggers += len(fired)
		t.emitter.Emit(t.simCfg.Channel, t.simCfg.PitchHz)
	}

	return core.StepResult{State: t.State()}
}

// handleInput applies configuration tweaks and manual nudges. Config is
// mutated between frames only, so the integrator reads a consistent view.
func (t *Toy) handleInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		t.paused = !t.paused
	}
	if t.paused {
		return
	}

	if in.Has(core.ActionBounceUp) {
		t.simCfg.AdjustBounciness(sim.BounceStep)
	}
	if in.Has(core.ActionBounceDown) {
		t.simCfg.AdjustBounciness(-sim.BounceStep)
	}
	if in.Has(core.ActionFrictionUp) {
		t.simCfg.AdjustFriction(1)
	}
	if in.Has(core.ActionFrictionDown) {
		t.simCfg.AdjustFriction(-1)
	}
	if in.Has(core.ActionPitchUp) {
		t.simCfg.AdjustPitch(sim.PitchStep)
	}
	if in.Has(core.ActionPitchDown) {
		t.simCfg.AdjustPitch(-sim.PitchStep)
	}
	if in.Has(core.ActionCycleColor) {
		t.simCfg.BallColor = core.NextColor(t.simCfg.BallColor)
		t.ball.Color = t.simCfg.BallColor
	}
	if in.Has(core.ActionToggleChannel) {
		t.simCfg.ToggleChannel()
	}
	if in.Has(core.ActionRecenter) {
		t.ball.Recenter(t.extent)
		t.zones.Reset()
	}

	if in.Has(core.ActionNudgeLeft) {
		t.ball.VX -= NudgeImpulse
	}
	if in.Has(core.ActionNudgeRight) {
		t.ball.VX += NudgeImpulse
	}
	if in.Has(core.ActionNudgeUp) {
		t.ball.VY -= NudgeImpulse
	}
	if in.Has(core.ActionNudgeDown) {
		t.ball.VY += NudgeImpulse
	}
}

// State returns the externally visible toy state.
func (t *Toy) State() core.State {
	return core.State{
		WallHits:     t.stats.WallHits,
		ZoneTriggers: t.stats.ZoneTriggers,
		DemoMode:     t.tilt.DemoMode(),
		Paused:       t.paused,
	}
}

// Stats returns the running session aggregates.
func (t *Toy) Stats() Stats {
	return t.stats
}

// Config returns the current live tuning, read by the HUD.
func (t *Toy) Config() sim.Config {
	return t.simCfg
}

// Ball returns the current ball, read by rendering only.
func (t *Toy) Ball() sim.Ball {
	return t.ball
}
