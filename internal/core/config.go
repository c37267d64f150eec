package core

// RuntimeConfig contains configuration passed to games at initialization.
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

// GameState represents the current state of a game.
type GameState struct {
	Score     int  // Current score
	Wave      int  // Number of times the field has been (re)populated
	Asteroids int  // Live asteroid count
	GameOver  bool // Player destroyed; the run is stopped
}

// Destroyed describes one entity removed during a simulation tick.
type Destroyed struct {
	Kind     EntityKind
	Tier     int // Asteroid tier, 0 for other kinds
	Position Point
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State     GameState
	Destroyed []Destroyed // Entities destroyed this tick, in resolution order
}
