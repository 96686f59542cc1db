// Package engine implements the chess rules core: board position, pseudo-legal
// move generation, special moves (castling, en passant, promotion) and the
// four-phase select/move turn state machine driven by board clicks.
//
// The package has no terminal, storage or platform dependencies. Every game
// is an explicit *Game value, so any number of games can run side by side.
//
// Coordinates follow the board as drawn on screen: file 0..7 left to right,
// rank 0..7 top to bottom. Black's back rank is rank 0, white's is rank 7.
package engine

// Side identifies one of the two players.
type Side int

const (
	White Side = iota
	Black
)

// String returns "white" or "black".
func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// forward is the rank delta of a pawn step.
func (s Side) forward() int {
	if s == White {
		return -1
	}
	return 1
}

// backRank is the rank the side's king and rooks start on.
func (s Side) backRank() int {
	if s == White {
		return 7
	}
	return 0
}

// pawnRank is the rank the side's pawns start on.
func (s Side) pawnRank() int {
	return s.backRank() + s.forward()
}

// promotionRank is the farthest rank from the side's start.
func (s Side) promotionRank() int {
	return s.Opponent().backRank()
}

// enPassantRank is the rank a pawn must stand on to capture en passant:
// the rank an enemy pawn lands on after its double step.
func (s Side) enPassantRank() int {
	opp := s.Opponent()
	return opp.pawnRank() + 2*opp.forward()
}
