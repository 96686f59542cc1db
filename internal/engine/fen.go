package engine

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// FEN returns the position in Forsyth-Edwards Notation with the given side
// to move. Move clocks are not tracked and are always written as "0 1".
func (p *Position) FEN(toMove Side) string {
	placement := make(map[chess.Square]chess.Piece, len(p.pieces))
	for _, pc := range p.pieces {
		placement[toChessSquare(pc.Square)] = chess.NewPiece(toChessType(pc.Kind), toChessColor(pc.Side))
	}
	board := chess.NewBoard(placement)

	active := "w"
	if toMove == Black {
		active = "b"
	}

	ep := "-"
	if sq, ok := p.enPassantCaptureSquare(); ok {
		ep = toChessSquare(sq).String()
	}

	return fmt.Sprintf("%s %s %s %s 0 1", board.String(), active, p.castlingField(), ep)
}

// FEN returns the current position with the side to move.
func (g *Game) FEN() string {
	return g.pos.FEN(g.step.Side())
}

// castlingField renders availability as FEN "KQkq". A right is written only
// when the flags allow it and the king and rook still stand on their corners.
func (p *Position) castlingField() string {
	var b strings.Builder
	for _, side := range []Side{White, Black} {
		rights := p.castling[side]
		rank := side.backRank()
		king := p.hasPiece(Sq(4, rank), King, side)
		if king && rights.Kingside() && p.hasPiece(Sq(BoardSize-1, rank), Rook, side) {
			b.WriteByte(sideLetter(side, 'K'))
		}
		if king && rights.Queenside() && p.hasPiece(Sq(0, rank), Rook, side) {
			b.WriteByte(sideLetter(side, 'Q'))
		}
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}

func (p *Position) hasPiece(sq Square, kind PieceKind, side Side) bool {
	pc, ok := p.PieceAt(sq)
	return ok && pc.Kind == kind && pc.Side == side
}

func sideLetter(side Side, upper byte) byte {
	if side == Black {
		return upper + ('a' - 'A')
	}
	return upper
}

func toChessSquare(sq Square) chess.Square {
	return chess.NewSquare(chess.File(sq.File), chess.Rank(BoardSize-1-sq.Rank))
}

func toChessColor(side Side) chess.Color {
	if side == White {
		return chess.White
	}
	return chess.Black
}

func toChessType(kind PieceKind) chess.PieceType {
	switch kind {
	case Pawn:
		return chess.Pawn
	case Knight:
		return chess.Knight
	case Bishop:
		return chess.Bishop
	case Rook:
		return chess.Rook
	case Queen:
		return chess.Queen
	default:
		return chess.King
	}
}
