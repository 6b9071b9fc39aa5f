// Package motion normalizes device-acceleration input into a 2D tilt vector
// for the simulation. Samples are push-driven and lossy: each one overwrites
// the previous, and the frame-driven consumer reads whatever is latest at
// its own cadence.
package motion

import (
	"context"
	"sync/atomic"
	"time"
)

// Vector is an instantaneous 3-axis acceleration sample. Only X and Y are
// consumed by the integrator; Z is carried for completeness. Axes the
// platform omits decode as 0.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Cell is a single-slot, last-value-wins share point between the push
// producer (a bridge goroutine) and the frame-driven consumer. No queue:
// intermediate samples are intentionally discardable.
type Cell struct {
	v atomic.Pointer[Vector]
}

// Store overwrites the stored sample.
func (c *Cell) Store(v Vector) {
	c.v.Store(&v)
}

// Load returns the latest sample, or a zero vector if none has arrived.
func (c *Cell) Load() Vector {
	if p := c.v.Load(); p != nil {
		return *p
	}
	return Vector{}
}

// Source supplies tilt samples. Implementations never raise from Latest:
// absent or partial data degrades to zeroed axes.
type Source interface {
	// ID returns the registry identifier for this source.
	ID() string

	// Latest returns the most recent tilt sample.
	Latest() Vector

	// Granted reports whether live motion permission has been granted.
	// While false, the adapter substitutes the synthetic demo signal.
	Granted() bool

	// Start begins producing samples. It must not block; production stops
	// when ctx is cancelled.
	Start(ctx context.Context) error

	// Close releases any resources held by the source.
	Close() error
}

// Adapter exposes the latest tilt vector on demand, falling back to the
// demo signal whenever no live permission exists. This is the system's
// default at startup.
type Adapter struct {
	src  Source
	demo *Demo
}

// NewAdapter wraps a source (which may be nil for demo-only operation).
func NewAdapter(src Source) *Adapter {
	return &Adapter{
		src:  src,
		demo: NewDemo(time.Now()),
	}
}

// Latest returns the current tilt vector: the live sample when permission
// has been granted, the synthetic signal otherwise.
func (a *Adapter) Latest() Vector {
	if a.src != nil && a.src.Granted() {
		return a.src.Latest()
	}
	return a.demo.Latest()
}

// DemoMode reports whether the adapter is currently serving the synthetic
// signal.
func (a *Adapter) DemoMode() bool {
	return a.src == nil || !a.src.Granted()
}

// SourceID returns the underlying source's ID, or "demo" when none is set.
func (a *Adapter) SourceID() string {
	if a.src == nil {
		return demoSourceID
	}
	return a.src.ID()
}
