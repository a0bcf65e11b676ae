package core

// RuntimeConfig contains configuration passed to programs at
// initialization. Gameplay tunables are compile-time constants in each
// program package; this carries only what the platform layer owns.
type RuntimeConfig struct {
	TickRate   int     // Simulation ticks per second (default 20, one tick = 50 ms)
	Seed       int64   // RNG seed for deterministic simulation
	Brightness float64 // Global LED brightness factor in [0, 1]
	Clock      Clock   // Monotonic clock for interval timers
}

// DefaultConfig returns a RuntimeConfig with the matrix defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:   20,
		Seed:       0, // 0 means the platform layer seeds from current time
		Brightness: 0.3,
		Clock:      NewSystemClock(),
	}
}

// TickMS returns the nominal tick period in milliseconds.
func (c RuntimeConfig) TickMS() int64 {
	if c.TickRate <= 0 {
		return 50
	}
	return int64(1000 / c.TickRate)
}

// GameState reports a program's status to the loop driver.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the current match/run has ended
	Paused   bool // Whether the program is paused
}

// StepResult is returned by Program.Step after each simulation tick.
type StepResult struct {
	State GameState
}
