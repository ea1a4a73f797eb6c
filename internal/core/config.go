package core

import "time"

// RuntimeConfig contains the per-session settings a front end starts a match with.
type RuntimeConfig struct {
	ScreenW        int   // Screen width in characters
	ScreenH        int   // Screen height in characters
	Seed           int64 // RNG seed, 0 means derive from the clock
	BoardSize      int   // Edge length of both boards
	Attempts       int   // Placement attempts per vessel
	RevealComputer bool  // Show the computer's fleet
	ComputerDelay  time.Duration
	LogLines       int    // Event log lines kept on screen
	Player         string // Name results are recorded under
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:       80,
		ScreenH:       24,
		Seed:          0, // 0 means use current time in platform layer
		BoardSize:     6,
		Attempts:      2000,
		ComputerDelay: 400 * time.Millisecond,
		LogLines:      6,
		Player:        "player",
	}
}
