package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and animation timing.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 30,
	}
}

// Outcome summarizes a finished game for the platform.
// It is filled in once, when the game ends.
type Outcome struct {
	Winner        string // "white" or "black"
	Reason        string // "king_captured" or "forfeit"
	Plies         int    // Half-moves played
	WhiteCaptures int    // Pieces taken by white
	BlackCaptures int    // Pieces taken by black
	FEN           string // Final position
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool     // Whether the game has ended
	Paused   bool     // Whether input is suspended (e.g. promotion choice pending)
	Outcome  *Outcome // Set when GameOver is true
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
