package engine

import "fmt"

// MoveKind classifies an applied move.
type MoveKind int

const (
	MoveNormal MoveKind = iota
	MoveCastleKingside
	MoveCastleQueenside
	MoveEnPassant
)

// String returns a short name for the move kind.
func (k MoveKind) String() string {
	switch k {
	case MoveNormal:
		return "normal"
	case MoveCastleKingside:
		return "castle_kingside"
	case MoveCastleQueenside:
		return "castle_queenside"
	case MoveEnPassant:
		return "en_passant"
	default:
		return "unknown"
	}
}

// MoveResult describes what applying a move did to the position.
type MoveResult struct {
	Piece    Piece // the mover, as it stood before the move
	To       Square
	Kind     MoveKind
	Captured *Piece // nil when nothing was taken
	Promotes bool   // the mover is a pawn that reached the last rank
}

// KingCaptured reports whether the move took the enemy king.
func (r MoveResult) KingCaptured() bool {
	return r.Captured != nil && r.Captured.Kind == King
}

// apply performs a move already known to be in the mover's generated list.
// Steps run in a fixed order: castling, en passant, ordinary move and
// capture, castling rights, en-passant target, promotion check.
func (p *Position) apply(id PieceID, to Square) MoveResult {
	pc, ok := p.pieces[id]
	if !ok {
		panic(fmt.Sprintf("engine: apply unknown piece %d", id))
	}
	from := pc.Square
	side := pc.Side
	res := MoveResult{Piece: pc, To: to, Kind: MoveNormal}

	switch {
	case pc.Kind == King && abs(to.File-from.File) == 2:
		p.castle(pc, to, &res)
		p.clearEnPassant()
		return res

	case pc.Kind == Pawn && p.isEnPassantCapture(pc, to):
		victim := p.take(p.bySquare[p.enPassant], side)
		res.Captured = &victim
		res.Kind = MoveEnPassant
		p.relocate(id, to)

	default:
		if victimID, occupied := p.bySquare[to]; occupied {
			victim := p.take(victimID, side)
			res.Captured = &victim
		}
		p.relocate(id, to)
	}

	p.updateCastlingRights(pc, from, res.Captured)

	if pc.Kind == Pawn && abs(to.Rank-from.Rank) == 2 && from.Rank == side.pawnRank() {
		p.SetEnPassant(to)
	} else {
		p.clearEnPassant()
	}

	res.Promotes = pc.Kind == Pawn && to.Rank == side.promotionRank()
	return res
}

// isEnPassantCapture reports whether a pawn moving to `to` captures the
// double-stepped pawn rather than an ordinary target.
func (p *Position) isEnPassantCapture(pawn Piece, to Square) bool {
	dest, ok := p.enPassantDestination(pawn.Square, pawn.Side)
	return ok && dest == to
}

// castle moves the king and the rook on its side. The generator already
// guaranteed the squares between were empty.
func (p *Position) castle(king Piece, to Square, res *MoveResult) {
	rank := king.Square.Rank
	rookFrom, rookTo := Sq(BoardSize-1, rank), Sq(to.File-1, rank)
	res.Kind = MoveCastleKingside
	if to.File < king.Square.File {
		rookFrom, rookTo = Sq(0, rank), Sq(to.File+1, rank)
		res.Kind = MoveCastleQueenside
	}

	p.relocate(king.ID, to)
	rights := p.castling[king.Side]
	rights.KingMoved = true
	if rook, ok := p.PieceAt(rookFrom); ok && rook.Kind == Rook && rook.Side == king.Side {
		p.relocate(rook.ID, rookTo)
	}
	if res.Kind == MoveCastleKingside {
		rights.KingsideRookMoved = true
	} else {
		rights.QueensideRookMoved = true
	}
	p.castling[king.Side] = rights
}

// updateCastlingRights flips the mover's flags for king and corner-rook
// moves, and the victim's flag when a rook is taken on its corner.
func (p *Position) updateCastlingRights(mover Piece, from Square, captured *Piece) {
	rights := p.castling[mover.Side]
	switch mover.Kind {
	case King:
		rights.KingMoved = true
	case Rook:
		markRook(&rights, from, mover.Side)
	}
	p.castling[mover.Side] = rights

	if captured != nil && captured.Kind == Rook {
		theirs := p.castling[captured.Side]
		markRook(&theirs, captured.Square, captured.Side)
		p.castling[captured.Side] = theirs
	}
}

// markRook flags the rook whose corner is sq, if sq is one of side's corners.
func markRook(rights *CastlingRights, sq Square, side Side) {
	if sq.Rank != side.backRank() {
		return
	}
	switch sq.File {
	case 0:
		rights.QueensideRookMoved = true
	case BoardSize - 1:
		rights.KingsideRookMoved = true
	}
}
