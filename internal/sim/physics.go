package sim

import "github.com/APeffer/fidgetball/internal/core"

// Fixed simulation constants. GravityScale decouples raw sensor magnitude
// from simulation responsiveness; MaxVelocity bounds per-frame travel so no
// single step can tunnel through a wall; ZoneMargin is the width of the
// feedback band just inside each boundary (the physical collision margin
// is zero).
const (
	GravityScale = 0.0004
	MaxVelocity  = 12.0
	ZoneMargin   = 3.0
)

// Side identifies one boundary of the playable surface.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// sideCount is the number of boundary sides tracked.
const sideCount = 4

// String returns the side name for logs and tests.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Collision reports a physical wall contact resolved during a step.
type Collision struct {
	Side Side
}

// Step advances the ball by exactly one simulation step. It is a pure
// function of the previous ball, the latest tilt sample, the current config
// and the boundary extent; it returns the new ball plus any wall collisions
// resolved this step. Both axes may collide in the same step (corner case),
// in which case both events are reported.
//
// The y tilt axis is sign-inverted: positive sensor y (device top tipped
// away) rolls the ball down-screen.
func Step(b Ball, tiltX, tiltY float64, cfg Config, ext Extent) (Ball, []Collision) {
	friction := cfg.FrictionCoefficient()

	// Tilt to acceleration, explicit Euler.
	b.VX += tiltX * GravityScale
	b.VY += -tiltY * GravityScale

	// Uniform damping both axes, every step, collision or not.
	b.VX *= friction
	b.VY *= friction

	// Clamp after friction, before the position update.
	b.VX = core.ClampF(b.VX, -MaxVelocity, MaxVelocity)
	b.VY = core.ClampF(b.VY, -MaxVelocity, MaxVelocity)

	b.X += b.VX
	b.Y += b.VY

	// Wall resolution, each axis independently. Position clamps exactly to
	// the boundary; no overshoot reflection.
	var collisions []Collision

	if b.X < b.Radius {
		b.X = b.Radius
		b.VX = -b.VX * cfg.Bounciness
		collisions = append(collisions, Collision{Side: SideLeft})
	} else if b.X > ext.W-b.Radius {
		b.X = ext.W - b.Radius
		b.VX = -b.VX * cfg.Bounciness
		collisions = append(collisions, Collision{Side: SideRight})
	}

	if b.Y < b.Radius {
		b.Y = b.Radius
		b.VY = -b.VY * cfg.Bounciness
		collisions = append(collisions, Collision{Side: SideTop})
	} else if b.Y > ext.H-b.Radius {
		b.Y = ext.H - b.Radius
		b.VY = -b.VY * cfg.Bounciness
		collisions = append(collisions, Collision{Side: SideBottom})
	}

	return b, collisions
}
