package engine

import (
	"fmt"
	"sort"
)

// CastlingRights tracks which castling pieces have left their start squares.
// Flags only ever flip to true; Restart is the only reset.
type CastlingRights struct {
	KingMoved          bool
	QueensideRookMoved bool
	KingsideRookMoved  bool
}

// Kingside reports whether kingside castling is still permitted by the flags.
func (c CastlingRights) Kingside() bool {
	return !c.KingMoved && !c.KingsideRookMoved
}

// Queenside reports whether queenside castling is still permitted by the flags.
func (c CastlingRights) Queenside() bool {
	return !c.KingMoved && !c.QueensideRookMoved
}

// noCastling marks every castling piece as moved.
var noCastling = CastlingRights{KingMoved: true, QueensideRookMoved: true, KingsideRookMoved: true}

// Position is the board state shared by both sides: pieces keyed by stable
// ID, a derived square index, capture trays, castling rights and the
// en-passant target.
type Position struct {
	pieces   map[PieceID]Piece
	bySquare map[Square]PieceID
	nextID   PieceID

	captured [2][]PieceKind
	castling [2]CastlingRights

	// enPassant is the square of the pawn that just made a double step.
	enPassant    Square
	hasEnPassant bool
}

// backRankOrder is the starting piece order along a back rank, file 0 to 7.
var backRankOrder = [BoardSize]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewPosition returns the standard starting array. White pieces are
// created before black ones, back rank first, so IDs 1..16 are white.
func NewPosition() *Position {
	p := EmptyPosition()
	for _, side := range []Side{White, Black} {
		for file, kind := range backRankOrder {
			p.Place(kind, side, Sq(file, side.backRank()))
		}
		for file := 0; file < BoardSize; file++ {
			p.Place(Pawn, side, Sq(file, side.pawnRank()))
		}
		p.castling[side] = CastlingRights{}
	}
	return p
}

// EmptyPosition returns a board with no pieces and no castling rights.
// Use Place and SetCastling to build custom setups.
func EmptyPosition() *Position {
	return &Position{
		pieces:   make(map[PieceID]Piece),
		bySquare: make(map[Square]PieceID),
		nextID:   1,
		castling: [2]CastlingRights{noCastling, noCastling},
	}
}

// Place puts a new piece on an empty square and returns its ID.
// It panics if the square is off the board or occupied.
func (p *Position) Place(kind PieceKind, side Side, sq Square) PieceID {
	if !sq.Valid() {
		panic(fmt.Sprintf("engine: place %s on invalid square %v", kind, sq))
	}
	if _, taken := p.bySquare[sq]; taken {
		panic(fmt.Sprintf("engine: place %s on occupied square %s", kind, sq))
	}
	id := p.nextID
	p.nextID++
	p.pieces[id] = Piece{ID: id, Kind: kind, Side: side, Square: sq}
	p.bySquare[sq] = id
	return id
}

// SetCastling overrides a side's castling flags. Intended for custom setups.
func (p *Position) SetCastling(side Side, rights CastlingRights) {
	p.castling[side] = rights
}

// SetEnPassant marks the pawn on sq as having just made a double step.
// Intended for custom setups.
func (p *Position) SetEnPassant(sq Square) {
	p.enPassant = sq
	p.hasEnPassant = true
}

// Clone returns an independent deep copy.
func (p *Position) Clone() *Position {
	c := &Position{
		pieces:       make(map[PieceID]Piece, len(p.pieces)),
		bySquare:     make(map[Square]PieceID, len(p.bySquare)),
		nextID:       p.nextID,
		castling:     p.castling,
		enPassant:    p.enPassant,
		hasEnPassant: p.hasEnPassant,
	}
	for id, pc := range p.pieces {
		c.pieces[id] = pc
	}
	for sq, id := range p.bySquare {
		c.bySquare[sq] = id
	}
	for side := range p.captured {
		c.captured[side] = append([]PieceKind(nil), p.captured[side]...)
	}
	return c
}

// Piece returns the piece with the given ID.
func (p *Position) Piece(id PieceID) (Piece, bool) {
	pc, ok := p.pieces[id]
	return pc, ok
}

// PieceAt returns the piece standing on sq.
func (p *Position) PieceAt(sq Square) (Piece, bool) {
	id, ok := p.bySquare[sq]
	if !ok {
		return Piece{}, false
	}
	return p.pieces[id], true
}

// occupied reports whether any piece stands on sq.
func (p *Position) occupied(sq Square) bool {
	_, ok := p.bySquare[sq]
	return ok
}

// sideAt reports which side occupies sq, if any.
func (p *Position) sideAt(sq Square) (Side, bool) {
	pc, ok := p.PieceAt(sq)
	return pc.Side, ok
}

// Pieces returns a side's pieces ordered by ID, i.e. creation order.
func (p *Position) Pieces(side Side) []Piece {
	out := make([]Piece, 0, 16)
	for _, pc := range p.pieces {
		if pc.Side == side {
			out = append(out, pc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// King returns the side's king, if it is still on the board.
func (p *Position) King(side Side) (Piece, bool) {
	for _, pc := range p.Pieces(side) {
		if pc.Kind == King {
			return pc, true
		}
	}
	return Piece{}, false
}

// Captured returns a copy of the kinds the side has taken, oldest first.
func (p *Position) Captured(side Side) []PieceKind {
	return append([]PieceKind(nil), p.captured[side]...)
}

// Castling returns the side's castling flags.
func (p *Position) Castling(side Side) CastlingRights {
	return p.castling[side]
}

// EnPassantTarget returns the square of the pawn that may be captured en
// passant on this half-move.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.enPassant, p.hasEnPassant
}

// enPassantCaptureSquare is the square a capturing pawn lands on: the
// square the double-stepping pawn skipped over.
func (p *Position) enPassantCaptureSquare() (Square, bool) {
	if !p.hasEnPassant {
		return Square{}, false
	}
	pawn, ok := p.PieceAt(p.enPassant)
	if !ok || pawn.Kind != Pawn {
		return Square{}, false
	}
	return p.enPassant.Offset(0, -pawn.Side.forward()), true
}

func (p *Position) clearEnPassant() {
	p.enPassant = Square{}
	p.hasEnPassant = false
}

// relocate moves a piece to an empty square, keeping the square index in sync.
func (p *Position) relocate(id PieceID, to Square) {
	pc := p.pieces[id]
	delete(p.bySquare, pc.Square)
	pc.Square = to
	p.pieces[id] = pc
	p.bySquare[to] = id
}

// take removes a piece from the board and appends it to the taker's tray.
func (p *Position) take(id PieceID, taker Side) Piece {
	pc := p.pieces[id]
	delete(p.pieces, id)
	delete(p.bySquare, pc.Square)
	p.captured[taker] = append(p.captured[taker], pc.Kind)
	return pc
}

// setKind changes a piece's kind in place. Used by promotion.
func (p *Position) setKind(id PieceID, kind PieceKind) {
	pc := p.pieces[id]
	pc.Kind = kind
	p.pieces[id] = pc
}
