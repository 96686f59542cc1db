package engine

import "fmt"

// TurnStep is the four-phase turn cycle.
type TurnStep int

const (
	WhiteSelect TurnStep = iota
	WhiteMove
	BlackSelect
	BlackMove
)

// String returns a short name for the step.
func (t TurnStep) String() string {
	switch t {
	case WhiteSelect:
		return "white_select"
	case WhiteMove:
		return "white_move"
	case BlackSelect:
		return "black_select"
	case BlackMove:
		return "black_move"
	default:
		return "unknown"
	}
}

// Side returns the side to move during this step.
func (t TurnStep) Side() Side {
	if t < BlackSelect {
		return White
	}
	return Black
}

// Selecting reports whether the step waits for a piece to be picked.
func (t TurnStep) Selecting() bool {
	return t == WhiteSelect || t == BlackSelect
}

// selectStep returns the select step for a side.
func selectStep(side Side) TurnStep {
	if side == White {
		return WhiteSelect
	}
	return BlackSelect
}

// Region is a clickable UI element outside the board.
type Region int

const (
	RegionNone Region = iota
	RegionForfeit
	RegionPromoteQueen
	RegionPromoteRook
	RegionPromoteBishop
	RegionPromoteKnight
)

// PromotionKind returns the piece kind chosen by a promotion region.
func (r Region) PromotionKind() (PieceKind, bool) {
	switch r {
	case RegionPromoteQueen:
		return Queen, true
	case RegionPromoteRook:
		return Rook, true
	case RegionPromoteBishop:
		return Bishop, true
	case RegionPromoteKnight:
		return Knight, true
	default:
		return 0, false
	}
}

// EndReason records why a game finished.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonKingCaptured
	ReasonForfeit
)

// String returns the reason as stored in game records.
func (r EndReason) String() string {
	switch r {
	case ReasonKingCaptured:
		return "king_captured"
	case ReasonForfeit:
		return "forfeit"
	default:
		return "none"
	}
}

// Promotion describes a pawn waiting for its new kind.
type Promotion struct {
	Piece  PieceID
	Side   Side
	Square Square
}

// Game is one chess game: the position plus turn, selection, promotion and
// result state. All mutation goes through Click, ClickRegion, Move, Promote,
// Forfeit and Restart. A Game is not safe for concurrent use.
type Game struct {
	rules Rules
	pos   *Position
	start func() *Position
	first Side

	step       TurnStep
	selection  PieceID
	validMoves []Square

	options [2]map[PieceID][]Square
	inCheck [2]bool

	promotion *Promotion
	winner    Side
	reason    EndReason
	plies     int
	last      *MoveResult
}

// NewGame starts a game from the standard array with white to move.
func NewGame(rules Rules) *Game {
	g := &Game{rules: rules, start: NewPosition, first: White}
	g.Restart()
	return g
}

// NewGameFromPosition starts a game from a custom setup. Restart returns to
// a fresh copy of the same setup.
func NewGameFromPosition(pos *Position, toMove Side, rules Rules) *Game {
	setup := pos.Clone()
	g := &Game{
		rules: rules,
		start: setup.Clone,
		first: toMove,
	}
	g.Restart()
	return g
}

// Restart reinitializes every piece of state to the starting configuration.
func (g *Game) Restart() {
	g.pos = g.start()
	g.step = selectStep(g.first)
	g.selection = NoPiece
	g.validMoves = nil
	g.promotion = nil
	g.winner = White
	g.reason = ReasonNone
	g.plies = 0
	g.last = nil
	g.refresh()
}

// Click feeds a board click into the turn state machine. It reports whether
// the click changed anything. Clicks that mean nothing are ignored.
func (g *Game) Click(sq Square) bool {
	if g.Over() || g.promotion != nil || !sq.Valid() {
		return false
	}
	side := g.step.Side()

	if pc, ok := g.pos.PieceAt(sq); ok && pc.Side == side {
		g.selectPiece(pc.ID)
		return true
	}

	if g.step.Selecting() || !containsSquare(g.validMoves, sq) {
		return false
	}
	g.commit(sq)
	return true
}

// ClickRegion handles a click on the forfeit button or a promotion choice.
// While a promotion is pending only the choices respond.
func (g *Game) ClickRegion(r Region) bool {
	if g.Over() {
		return false
	}
	if g.promotion != nil {
		kind, ok := r.PromotionKind()
		if !ok {
			return false
		}
		return g.Promote(kind) == nil
	}
	if r == RegionForfeit {
		return g.Forfeit() == nil
	}
	return false
}

// Move selects the piece on from and moves it to to, as two clicks would.
func (g *Game) Move(from, to Square) error {
	if err := g.ready(); err != nil {
		return err
	}
	pc, ok := g.pos.PieceAt(from)
	if !ok || pc.Side != g.step.Side() {
		return fmt.Errorf("%w: %s", ErrNoPiece, from)
	}
	if !containsSquare(g.options[pc.Side][pc.ID], to) {
		return fmt.Errorf("%w: %s %s-%s", ErrIllegalMove, pc.Kind, from, to)
	}
	g.selectPiece(pc.ID)
	g.commit(to)
	return nil
}

// Promote resolves a pending promotion. The pawn keeps its ID and square.
func (g *Game) Promote(kind PieceKind) error {
	if g.Over() {
		return ErrGameOver
	}
	if g.promotion == nil {
		return ErrNoPromotionPending
	}
	if !CanPromoteTo(kind) {
		return fmt.Errorf("%w: %s", ErrInvalidPromotion, kind)
	}
	g.pos.setKind(g.promotion.Piece, kind)
	g.promotion = nil
	g.refresh()
	return nil
}

// Forfeit ends the game in favor of the side not currently to move.
func (g *Game) Forfeit() error {
	if err := g.ready(); err != nil {
		return err
	}
	g.finish(g.step.Side().Opponent(), ReasonForfeit)
	return nil
}

func (g *Game) ready() error {
	if g.Over() {
		return ErrGameOver
	}
	if g.promotion != nil {
		return ErrPromotionPending
	}
	return nil
}

func (g *Game) selectPiece(id PieceID) {
	side := g.step.Side()
	g.selection = id
	g.validMoves = g.options[side][id]
	g.step = selectStep(side) + 1
}

// commit applies the selected piece's move to sq and hands the turn over.
func (g *Game) commit(sq Square) {
	if g.selection == NoPiece || !containsSquare(g.validMoves, sq) {
		panic(fmt.Sprintf("engine: commit %s without a valid selection", sq))
	}
	side := g.step.Side()
	res := g.pos.apply(g.selection, sq)
	g.last = &res
	g.plies++

	g.step = selectStep(side.Opponent())
	g.selection = NoPiece
	g.validMoves = nil

	if res.KingCaptured() {
		g.finish(side, ReasonKingCaptured)
	} else if res.Promotes {
		g.promotion = &Promotion{Piece: res.Piece.ID, Side: side, Square: sq}
	}
	g.refresh()
}

func (g *Game) finish(winner Side, reason EndReason) {
	g.winner = winner
	g.reason = reason
	g.promotion = nil
	g.selection = NoPiece
	g.validMoves = nil
}

// refresh recomputes both sides' move lists and the check flags.
// It is the only place the cached lists change.
func (g *Game) refresh() {
	for _, side := range []Side{White, Black} {
		g.options[side] = g.pos.legalOptions(side, g.rules)
	}
	for _, side := range []Side{White, Black} {
		g.inCheck[side] = false
		king, ok := g.pos.King(side)
		if !ok {
			continue
		}
		// Unfiltered lists: a pinned attacker still gives check.
		g.inCheck[side] = g.pos.Attacks(side.Opponent(), king.Square)
	}
	if g.selection != NoPiece {
		g.validMoves = g.options[g.step.Side()][g.selection]
	}
}

// Rules returns the game's ruleset.
func (g *Game) Rules() Rules { return g.rules }

// Position returns the live position. Callers must treat it as read-only.
func (g *Game) Position() *Position { return g.pos }

// Pieces returns a side's pieces in stable order.
func (g *Game) Pieces(side Side) []Piece { return g.pos.Pieces(side) }

// PieceAt returns the piece on sq.
func (g *Game) PieceAt(sq Square) (Piece, bool) { return g.pos.PieceAt(sq) }

// Captured returns the kinds taken by side, oldest first.
func (g *Game) Captured(side Side) []PieceKind { return g.pos.Captured(side) }

// CastlingRights returns a side's castling flags.
func (g *Game) CastlingRights(side Side) CastlingRights { return g.pos.Castling(side) }

// EnPassantTarget returns the pawn square capturable en passant this half-move.
func (g *Game) EnPassantTarget() (Square, bool) { return g.pos.EnPassantTarget() }

// TurnStep returns the current phase of the turn cycle.
func (g *Game) TurnStep() TurnStep { return g.step }

// SideToMove returns the side whose clicks are being interpreted.
func (g *Game) SideToMove() Side { return g.step.Side() }

// Selection returns the selected piece, or NoPiece.
func (g *Game) Selection() PieceID { return g.selection }

// ValidMoves returns a copy of the cached destinations of the selection.
func (g *Game) ValidMoves() []Square {
	return append([]Square(nil), g.validMoves...)
}

// Options returns a copy of the cached destination lists for a side.
func (g *Game) Options(side Side) map[PieceID][]Square {
	out := make(map[PieceID][]Square, len(g.options[side]))
	for id, moves := range g.options[side] {
		out[id] = append([]Square(nil), moves...)
	}
	return out
}

// PendingPromotion returns the pawn awaiting promotion, if any.
func (g *Game) PendingPromotion() (Promotion, bool) {
	if g.promotion == nil {
		return Promotion{}, false
	}
	return *g.promotion, true
}

// Over reports whether the game has a winner.
func (g *Game) Over() bool { return g.reason != ReasonNone }

// Winner returns the winning side once the game is over.
func (g *Game) Winner() (Side, bool) {
	if !g.Over() {
		return White, false
	}
	return g.winner, true
}

// EndReason returns why the game ended, or ReasonNone.
func (g *Game) EndReason() EndReason { return g.reason }

// InCheck reports whether side's king square appears in the opponent's
// cached move lists. It is informational only.
func (g *Game) InCheck(side Side) bool { return g.inCheck[side] }

// Plies returns the number of half-moves played.
func (g *Game) Plies() int { return g.plies }

// LastMove returns the most recent move, if any.
func (g *Game) LastMove() (MoveResult, bool) {
	if g.last == nil {
		return MoveResult{}, false
	}
	return *g.last, true
}
