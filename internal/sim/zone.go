package sim

// zoneState is the per-side debounce state.
type zoneState uint8

const (
	zoneOutside zoneState = iota
	zoneInsideNotFired
	zoneInsideFired
)

// ZoneTracker maintains an edge-debounced state per boundary side so that
// feedback fires exactly once per continuous occupancy of the margin band,
// independent of frame rate. Feedback decouples from physical collision:
// the band sits inside the boundary, so a slow approach can trigger the
// blip before contact.
type ZoneTracker struct {
	states [sideCount]zoneState
}

// Reset returns every side to the outside state.
func (t *ZoneTracker) Reset() {
	for i := range t.states {
		t.states[i] = zoneOutside
	}
}

// Update recomputes zone membership for all four sides from the ball's edge
// positions and advances each side's state machine. It returns the sides
// newly entered this frame, i.e. the sides whose trigger fired.
func (t *ZoneTracker) Update(b Ball, ext Extent, margin float64) []Side {
	inside := [sideCount]bool{
		SideLeft:   b.X-b.Radius <= margin,
		SideRight:  ext.W-(b.X+b.Radius) <= margin,
		SideTop:    b.Y-b.Radius <= margin,
		SideBottom: ext.H-(b.Y+b.Radius) <= margin,
	}

	var fired []Side
	for i := range t.states {
		switch t.states[i] {
		case zoneOutside:
			if inside[i] {
				// Entry edge: fire once and latch.
				t.states[i] = zoneInsideFired
				fired = append(fired, Side(i))
			}
		case zoneInsideNotFired, zoneInsideFired:
			if !inside[i] {
				t.states[i] = zoneOutside
			} else {
				t.states[i] = zoneInsideFired
			}
		}
	}
	return fired
}

// Occupied reports whether the given side's zone is currently occupied.
func (t *ZoneTracker) Occupied(s Side) bool {
	return t.states[s] != zoneOutside
}
