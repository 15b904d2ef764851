package core

// RuntimeConfig contains configuration passed to the game at
// initialization. The game uses it to adapt to screen size and for
// deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState communicates game status to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface the platform drives. Game logic stays pure: the
// platform owns input mapping, timing, and terminal rendering.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state. Called once at start and
	// again when restarting after game over. Returns an error only for an
	// invalid configuration; the platform must refuse to start in that case.
	Reset(cfg RuntimeConfig) error

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
