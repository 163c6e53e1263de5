package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 30)
	Seed     int64 // RNG seed; 0 means seed from the clock in the platform layer
	Stage    int   // Starting stage index in the catalog
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  40,
		TickRate: 30,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has failed
	Won      bool // Whether the current stage is cleared
	Paused   bool // Whether the game is paused
	Stage    string
}

// StepResult is returned by Game.Step() after each platform frame.
type StepResult struct {
	State GameState
}
