package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// State is the top-level session state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateQuit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameState summarizes the session for the platform layer.
type GameState struct {
	State    State
	Depth    int
	Kills    int
	Turns    int
	GameOver bool // Player was defeated
	Quit     bool // Player confirmed quitting
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState
	// TurnTaken is false when the input was rejected or only toggled UI state.
	TurnTaken bool
}
