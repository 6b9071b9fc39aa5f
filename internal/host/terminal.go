package host

import (
	"context"
	"io"
)

// Vibrator is the slice of the motion bridge the host layer needs: whether
// the attached companion can vibrate, and the pulse call itself.
type Vibrator interface {
	CanVibrate() bool
	Vibrate(ctx context.Context) error
}

// BellHost delivers haptic pulses as a terminal BEL. Many terminal
// emulators map BEL to a vibration on mobile clients, which is as close to
// an impact pulse as a plain terminal gets.
type BellHost struct {
	w io.Writer
}

// NewBellHost creates a host writing BEL to w (usually the terminal).
func NewBellHost(w io.Writer) *BellHost {
	return &BellHost{w: w}
}

// Capabilities implements Host. The bell is always available.
func (h *BellHost) Capabilities(_ context.Context) ([]Capability, error) {
	return []Capability{CapabilityHaptic}, nil
}

// TriggerHaptic implements Host.
func (h *BellHost) TriggerHaptic(_ context.Context) error {
	_, err := h.w.Write([]byte{0x07})
	return err
}

// Ready implements Host. A terminal shell has no reveal handshake.
func (h *BellHost) Ready(_ context.Context) error {
	return nil
}

// BridgeHost delivers haptic pulses through the phone companion attached to
// the motion bridge, when one is connected and advertised vibration.
type BridgeHost struct {
	vib Vibrator
}

// NewBridgeHost creates a host backed by the motion bridge.
func NewBridgeHost(v Vibrator) *BridgeHost {
	return &BridgeHost{vib: v}
}

// Capabilities implements Host, advertising haptics only while a
// vibration-capable companion is attached.
func (h *BridgeHost) Capabilities(_ context.Context) ([]Capability, error) {
	if h.vib.CanVibrate() {
		return []Capability{CapabilityHaptic}, nil
	}
	return nil, nil
}

// TriggerHaptic implements Host.
func (h *BridgeHost) TriggerHaptic(ctx context.Context) error {
	return h.vib.Vibrate(ctx)
}

// Ready implements Host.
func (h *BridgeHost) Ready(_ context.Context) error {
	return nil
}

// NoopHost advertises nothing and accepts everything. Used headless and in
// tests.
type NoopHost struct{}

// Capabilities implements Host.
func (NoopHost) Capabilities(_ context.Context) ([]Capability, error) { return nil, nil }

// TriggerHaptic implements Host.
func (NoopHost) TriggerHaptic(_ context.Context) error { return nil }

// Ready implements Host.
func (NoopHost) Ready(_ context.Context) error { return nil }
