// Package host models the embedding shell the toy runs inside: capability
// negotiation, haptic pulses, and the one-shot readiness signal. Every call
// into the shell is bounded by a timeout so a blocked host never stalls the
// frame loop; failures are logged and degraded, never surfaced to the user.
package host

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Capability tags a host-advertised feature.
type Capability string

// CapabilityHaptic marks hosts able to deliver an impact pulse.
const CapabilityHaptic Capability = "haptic"

// Default bounds for host calls. The shell is not trusted to answer.
const (
	CapabilityTimeout = 2 * time.Second
	HapticTimeout     = 500 * time.Millisecond
	ReadyTimeout      = 2 * time.Second
)

// CallStatus discriminates the outcome of a timeout-guarded host call:
// a result, an expiry, or a failure. Callers branch on the status instead
// of relying on error fallthrough.
type CallStatus int

const (
	CallOK CallStatus = iota
	CallExpired
	CallFailed
)

// String returns the status name for logs.
func (s CallStatus) String() string {
	switch s {
	case CallOK:
		return "ok"
	case CallExpired:
		return "expired"
	case CallFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CapabilityResult is the discriminated outcome of a capability query.
type CapabilityResult struct {
	Status CallStatus
	Caps   []Capability
	Err    error
}

// Supports reports whether the query succeeded and advertised cap.
func (r CapabilityResult) Supports(cap Capability) bool {
	if r.Status != CallOK {
		return false
	}
	for _, c := range r.Caps {
		if c == cap {
			return true
		}
	}
	return false
}

// Host is the embedding shell the toy talks to. Implementations must be
// safe to call from the emitter's detached goroutines.
type Host interface {
	// Capabilities queries the host's supported feature tags.
	Capabilities(ctx context.Context) ([]Capability, error)

	// TriggerHaptic requests a single medium impact pulse.
	TriggerHaptic(ctx context.Context) error

	// Ready tells the host shell the toy is set up and can be revealed.
	Ready(ctx context.Context) error
}

// Guarded wraps a Host with timeouts and logging, turning each call into a
// two-outcome race between the result and the expiry.
type Guarded struct {
	host   Host
	logger *log.Logger
}

// NewGuarded wraps host. The logger may be nil.
func NewGuarded(h Host, logger *log.Logger) *Guarded {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Guarded{host: h, logger: logger}
}

// QueryCapabilities runs the capability query bounded by CapabilityTimeout.
// Expiry and failure both degrade to an empty capability set.
func (g *Guarded) QueryCapabilities(ctx context.Context) CapabilityResult {
	ctx, cancel := context.WithTimeout(ctx, CapabilityTimeout)
	defer cancel()

	type outcome struct {
		caps []Capability
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		caps, err := g.host.Capabilities(ctx)
		ch <- outcome{caps: caps, err: err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			g.logger.Warn("capability query failed", "error", out.err)
			return CapabilityResult{Status: CallFailed, Err: out.err}
		}
		return CapabilityResult{Status: CallOK, Caps: out.caps}
	case <-ctx.Done():
		g.logger.Warn("capability query timed out")
		return CapabilityResult{Status: CallExpired, Err: ctx.Err()}
	}
}

// TriggerHaptic requests a pulse bounded by HapticTimeout. Returns the
// discriminated status; the caller decides on the audio fallback.
func (g *Guarded) TriggerHaptic(ctx context.Context) CallStatus {
	ctx, cancel := context.WithTimeout(ctx, HapticTimeout)
	defer cancel()

	ch := make(chan error, 1)
	go func() {
		ch <- g.host.TriggerHaptic(ctx)
	}()

	select {
	case err := <-ch:
		if err != nil {
			g.logger.Warn("haptic call failed", "error", err)
			return CallFailed
		}
		return CallOK
	case <-ctx.Done():
		g.logger.Warn("haptic call timed out")
		return CallExpired
	}
}

// SignalReady sends the one-shot reveal signal, bounded by ReadyTimeout.
// Failure does not block the toy's own operation.
func (g *Guarded) SignalReady(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, ReadyTimeout)
	defer cancel()

	ch := make(chan error, 1)
	go func() {
		ch <- g.host.Ready(ctx)
	}()

	select {
	case err := <-ch:
		if err != nil {
			g.logger.Warn("readiness signal failed", "error", err)
			return
		}
		g.logger.Debug("host shell signalled ready")
	case <-ctx.Done():
		g.logger.Warn("readiness signal timed out")
	}
}
