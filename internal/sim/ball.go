// Package sim implements the FidgetBall physics core: a single circular body
// rolling inside an axis-aligned rectangular boundary, driven by tilt input,
// with restitution on wall contact and an edge-debounced feedback zone
// tracker. The integrator is a pure function so every numeric property is
// directly testable.
package sim

import "github.com/APeffer/fidgetball/internal/core"

// Ball is the mutable simulation state: position and velocity in canvas
// units, plus the fixed per-session radius and display color. Position is
// kept within [Radius, extent-Radius] by collision resolution.
type Ball struct {
	X, Y   float64    // Center position, canvas-space
	VX, VY float64    // Velocity, units per frame
	Radius float64    // Fixed per session, > 0
	Color  core.Color // Display color, read by rendering only
}

// Extent is the playable surface size. It changes on viewport resize.
type Extent struct {
	W, H float64
}

// NewBall returns a ball at rest in the center of the extent.
func NewBall(radius float64, color core.Color, ext Extent) Ball {
	return Ball{
		X:      ext.W / 2,
		Y:      ext.H / 2,
		Radius: radius,
		Color:  color,
	}
}

// Speed returns the velocity magnitude squared-free per-axis max, used only
// for session stats; it intentionally reports the larger axis component so
// the HUD tracks the same quantity the clamp bounds.
func (b Ball) Speed() float64 {
	vx := core.AbsF(b.VX)
	vy := core.AbsF(b.VY)
	if vx > vy {
		return vx
	}
	return vy
}

// ClampInto moves the ball the minimum distance needed to fit inside the
// given extent, preserving velocity. Called when the viewport resizes.
func (b *Ball) ClampInto(ext Extent) {
	b.X = core.ClampF(b.X, b.Radius, ext.W-b.Radius)
	b.Y = core.ClampF(b.Y, b.Radius, ext.H-b.Radius)
}

// Recenter places the ball back in the middle of the extent at rest.
func (b *Ball) Recenter(ext Extent) {
	b.X = ext.W / 2
	b.Y = ext.H / 2
	b.VX = 0
	b.VY = 0
}
