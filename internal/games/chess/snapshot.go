package chess

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePromoting   GameStateType = "promoting"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for tests and debug dumps.
type Snapshot struct {
	Tick     uint64
	Variant  string
	FEN      string
	TurnStep string
	Cursor   string
	Selected string   // Square of the selected piece, empty if none
	Valid    []string // Destinations of the selected piece
	InCheck  bool     // Side to move is in check
	Winner   string   // Empty until the game ends
	Reason   string
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	_, promoting := g.game.PendingPromotion()
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.game.Over():
		state = StateGameOver
	case promoting:
		state = StatePromoting
	}

	snap := Snapshot{
		Tick:     g.tick,
		Variant:  g.variant,
		FEN:      g.game.FEN(),
		TurnStep: g.game.TurnStep().String(),
		Cursor:   g.cursor.String(),
		InCheck:  g.game.InCheck(g.game.SideToMove()),
		State:    state,
	}
	if pc, ok := g.game.Position().Piece(g.game.Selection()); ok {
		snap.Selected = pc.Square.String()
	}
	for _, sq := range g.game.ValidMoves() {
		snap.Valid = append(snap.Valid, sq.String())
	}
	if winner, ok := g.game.Winner(); ok {
		snap.Winner = winner.String()
		snap.Reason = g.game.EndReason().String()
	}
	return snap
}
