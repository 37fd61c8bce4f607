package core

// RuntimeConfig contains host settings passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
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

// Dt returns the fixed tick duration in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the host-facing summary of a game.
type GameState struct {
	Score    int  // Current score
	Started  bool // Whether a run is in progress or finished (not idle)
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the host paused stepping
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
