package engine

import "fmt"

// PieceKind is the closed set of chess piece types.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the lower-case piece name.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return fmt.Sprintf("PieceKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the six piece kinds.
func (k PieceKind) Valid() bool {
	return k >= Pawn && k <= King
}

// PromotionKinds lists the kinds a pawn may promote to, in menu order.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// CanPromoteTo reports whether a pawn may become k.
func CanPromoteTo(k PieceKind) bool {
	for _, p := range PromotionKinds {
		if p == k {
			return true
		}
	}
	return false
}

// PieceID is a stable handle for a piece. It never changes while the piece
// is on the board, and captures never renumber other pieces.
type PieceID int

// NoPiece is the "nothing selected" sentinel. Real IDs start at 1.
const NoPiece PieceID = 0

// Piece is a single piece on the board.
type Piece struct {
	ID     PieceID
	Kind   PieceKind
	Side   Side
	Square Square
}
