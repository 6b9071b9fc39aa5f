package core

// RuntimeConfig contains configuration passed to the toy at initialization.
// The toy uses this to adapt to screen size; the tick rate defines the
// frame cadence (step size is one frame, not wall-clock time).
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // Session seed, used for session identifiers
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// State represents the externally visible state of the toy.
// Returned by Toy.State() to communicate status to the platform.
type State struct {
	WallHits     int  // Physical wall collisions this session
	ZoneTriggers int  // Feedback zone entries this session
	DemoMode     bool // True while running on the synthetic tilt signal
	Paused       bool // Whether the loop is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State State
}
