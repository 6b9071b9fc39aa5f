package host

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

// stubHost scripts each call's behavior.
type stubHost struct {
	caps      []Capability
	capsErr   error
	hapticErr error
	readyErr  error
	delay     time.Duration
}

func (h *stubHost) Capabilities(ctx context.Context) ([]Capability, error) {
	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-ctx.Done():
		}
	}
	return h.caps, h.capsErr
}

func (h *stubHost) TriggerHaptic(ctx context.Context) error {
	if h.delay > 0 {
		select {
		case <-time.After(h.delay):
		case <-ctx.Done():
		}
	}
	return h.hapticErr
}

func (h *stubHost) Ready(_ context.Context) error {
	return h.readyErr
}

func TestQueryCapabilities(t *testing.T) {
	g := NewGuarded(&stubHost{caps: []Capability{CapabilityHaptic}}, nil)

	res := g.QueryCapabilities(t.Context())
	if res.Status != CallOK {
		t.Fatalf("status = %v, want ok", res.Status)
	}
	if !res.Supports(CapabilityHaptic) {
		t.Error("haptic capability not reported")
	}
}

func TestQueryCapabilitiesFailure(t *testing.T) {
	g := NewGuarded(&stubHost{capsErr: errors.New("shell broke")}, nil)

	res := g.QueryCapabilities(t.Context())
	if res.Status != CallFailed {
		t.Errorf("status = %v, want failed", res.Status)
	}
	if res.Supports(CapabilityHaptic) {
		t.Error("failed query must not advertise capabilities")
	}
}

func TestQueryCapabilitiesTimeout(t *testing.T) {
	// Host that answers long after CapabilityTimeout.
	g := NewGuarded(&stubHost{delay: CapabilityTimeout + time.Second}, nil)

	start := time.Now()
	res := g.QueryCapabilities(t.Context())
	if res.Status != CallExpired {
		t.Errorf("status = %v, want expired", res.Status)
	}
	if elapsed := time.Since(start); elapsed > CapabilityTimeout+time.Second {
		t.Errorf("query blocked for %v", elapsed)
	}
}

func TestTriggerHaptic(t *testing.T) {
	tests := []struct {
		name string
		host *stubHost
		want CallStatus
	}{
		{"success", &stubHost{}, CallOK},
		{"failure", &stubHost{hapticErr: errors.New("no motor")}, CallFailed},
		{"timeout", &stubHost{delay: HapticTimeout + time.Second}, CallExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGuarded(tt.host, nil)
			if got := g.TriggerHaptic(t.Context()); got != tt.want {
				t.Errorf("TriggerHaptic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignalReadyNeverPanics(t *testing.T) {
	// Failure is logged and swallowed.
	g := NewGuarded(&stubHost{readyErr: errors.New("shell gone")}, nil)
	g.SignalReady(t.Context())
}

func TestBellHostWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	h := NewBellHost(&buf)

	caps, err := h.Capabilities(t.Context())
	if err != nil || len(caps) != 1 || caps[0] != CapabilityHaptic {
		t.Fatalf("Capabilities() = %v, %v", caps, err)
	}

	if err := h.TriggerHaptic(t.Context()); err != nil {
		t.Fatalf("TriggerHaptic failed: %v", err)
	}
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0x07 {
		t.Errorf("wrote %v, want single BEL", got)
	}
}

// stubVibrator fakes the motion bridge's haptic surface.
type stubVibrator struct {
	can    bool
	pulsed bool
}

func (v *stubVibrator) CanVibrate() bool { return v.can }
func (v *stubVibrator) Vibrate(_ context.Context) error {
	v.pulsed = true
	return nil
}

func TestBridgeHostCapabilities(t *testing.T) {
	vib := &stubVibrator{}
	h := NewBridgeHost(vib)

	caps, _ := h.Capabilities(t.Context())
	if len(caps) != 0 {
		t.Errorf("no companion: caps = %v, want none", caps)
	}

	vib.can = true
	caps, _ = h.Capabilities(t.Context())
	if len(caps) != 1 || caps[0] != CapabilityHaptic {
		t.Errorf("companion attached: caps = %v, want haptic", caps)
	}

	if err := h.TriggerHaptic(t.Context()); err != nil {
		t.Fatalf("TriggerHaptic failed: %v", err)
	}
	if !vib.pulsed {
		t.Error("pulse never reached the vibrator")
	}
}
