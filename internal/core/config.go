package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (unused by the window front end)
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

// GameState is the status the game reports to the platform.
type GameState struct {
	Frame        uint64 // Frames simulated since the last reset
	Terminated   bool   // Player was hit; waiting for acknowledgment
	EnemiesAlive int    // Live enemies left in the formation
}

// StepResult is returned after each frame.
type StepResult struct {
	State GameState

	// GameOver is true only on the frame the player was hit.
	GameOver bool
}
