package toy

import "hash/fnv"

// Snapshot captures the externally observable simulation state, quantized
// so floating-point state hashes stably. Used by determinism tests.
type Snapshot struct {
	Tick         int
	BallX        int64 // position ×1000
	BallY        int64
	BallVX       int64 // velocity ×1000
	BallVY       int64
	WallHits     int
	ZoneTriggers int
}

// Snapshot returns the current quantized state.
func (t *Toy) Snapshot() Snapshot {
	return Snapshot{
		Tick:         t.tick,
		BallX:        int64(t.ball.X * 1000),
		BallY:        int64(t.ball.Y * 1000),
		BallVX:       int64(t.ball.VX * 1000),
		BallVY:       int64(t.ball.VY * 1000),
		WallHits:     t.stats.WallHits,
		ZoneTriggers: t.stats.ZoneTriggers,
	}
}

// Hash folds the snapshot into a single comparable value.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	write := func(v int64) {
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	write(int64(s.Tick))
	write(s.BallX)
	write(s.BallY)
	write(s.BallVX)
	write(s.BallVY)
	write(int64(s.WallHits))
	write(int64(s.ZoneTriggers))
	return h.Sum64()
}
