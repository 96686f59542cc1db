package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// kingsOnly returns a position with both kings tucked in the a-file corners.
func kingsOnly() *Position {
	p := EmptyPosition()
	p.Place(King, White, sq("a1"))
	p.Place(King, Black, sq("a8"))
	return p
}

func TestNewGameInitialState(t *testing.T) {
	g := NewGame(Casual)

	assert.Equal(t, WhiteSelect, g.TurnStep())
	assert.Equal(t, White, g.SideToMove())
	assert.Equal(t, NoPiece, g.Selection())
	assert.Empty(t, g.ValidMoves())
	assert.False(t, g.Over())
	_, hasWinner := g.Winner()
	assert.False(t, hasWinner)
	_, pending := g.PendingPromotion()
	assert.False(t, pending)
	_, hasTarget := g.EnPassantTarget()
	assert.False(t, hasTarget)
	assert.Equal(t, CastlingRights{}, g.CastlingRights(White))
	assert.Equal(t, CastlingRights{}, g.CastlingRights(Black))
}

func TestSelectThenMoveCycle(t *testing.T) {
	g := NewGame(Casual)

	// Clicking an empty square or an enemy piece while selecting does nothing.
	assert.False(t, g.Click(sq("e4")))
	assert.False(t, g.Click(sq("e7")))
	assert.Equal(t, WhiteSelect, g.TurnStep())

	require.True(t, g.Click(sq("e2")))
	assert.Equal(t, WhiteMove, g.TurnStep())
	assert.Equal(t, squares("e3", "e4"), g.ValidMoves())

	require.True(t, g.Click(sq("e4")))
	assert.Equal(t, BlackSelect, g.TurnStep())
	assert.Equal(t, NoPiece, g.Selection())
	assert.Empty(t, g.ValidMoves())
	assert.Equal(t, 1, g.Plies())

	require.True(t, g.Click(sq("e7")))
	assert.Equal(t, BlackMove, g.TurnStep())
	require.True(t, g.Click(sq("e5")))
	assert.Equal(t, WhiteSelect, g.TurnStep())
	assert.Equal(t, 2, g.Plies())
}

func TestMoveStateReselectAndIgnore(t *testing.T) {
	g := NewGame(Casual)
	require.True(t, g.Click(sq("e2")))
	e2 := g.Selection()

	// A click outside the valid list keeps the selection.
	assert.False(t, g.Click(sq("e5")))
	assert.Equal(t, e2, g.Selection())
	assert.Equal(t, WhiteMove, g.TurnStep())

	// Another own piece re-selects without leaving the move state.
	require.True(t, g.Click(sq("g1")))
	assert.NotEqual(t, e2, g.Selection())
	assert.Equal(t, WhiteMove, g.TurnStep())
	assert.Equal(t, squares("h3", "f3"), g.ValidMoves())
}

func TestCaptureKeepsOtherIDsStable(t *testing.T) {
	g := NewGame(Casual)
	hPawn, ok := g.PieceAt(sq("h2"))
	require.True(t, ok)

	for _, mv := range [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}} {
		require.NoError(t, g.Move(sq(mv[0]), sq(mv[1])))
	}

	assert.Equal(t, []PieceKind{Pawn}, g.Captured(White))
	assert.Empty(t, g.Captured(Black))
	assert.Len(t, g.Pieces(Black), 15)

	again, ok := g.PieceAt(sq("h2"))
	require.True(t, ok)
	assert.Equal(t, hPawn.ID, again.ID)

	// Black's pieces after the captured one keep their IDs too.
	blackH, ok := g.PieceAt(sq("h7"))
	require.True(t, ok)
	assert.Equal(t, PieceID(32), blackH.ID)
}

func TestEnPassantScenario(t *testing.T) {
	p := kingsOnly()
	p.Place(Pawn, White, Sq(4, 6))
	p.Place(Pawn, Black, Sq(3, 4))
	g := NewGameFromPosition(p, White, Casual)

	require.NoError(t, g.Move(Sq(4, 6), Sq(4, 4)))
	target, ok := g.EnPassantTarget()
	require.True(t, ok)
	assert.Equal(t, Sq(4, 4), target)

	// Destination square is empty before the capture.
	_, occupied := g.PieceAt(Sq(4, 5))
	require.False(t, occupied)

	require.True(t, g.Click(Sq(3, 4)))
	assert.Contains(t, g.ValidMoves(), Sq(4, 5))
	require.True(t, g.Click(Sq(4, 5)))

	_, stillThere := g.PieceAt(Sq(4, 4))
	assert.False(t, stillThere, "passed pawn must be removed")
	mover, ok := g.PieceAt(Sq(4, 5))
	require.True(t, ok)
	assert.Equal(t, Black, mover.Side)
	assert.Equal(t, []PieceKind{Pawn}, g.Captured(Black))
	assert.Len(t, g.Pieces(White), 1)

	last, ok := g.LastMove()
	require.True(t, ok)
	assert.Equal(t, MoveEnPassant, last.Kind)

	_, hasTarget := g.EnPassantTarget()
	assert.False(t, hasTarget)
}

func TestEnPassantExpiresAfterOneHalfMove(t *testing.T) {
	p := kingsOnly()
	p.Place(Pawn, White, sq("e2"))
	blackPawn := p.Place(Pawn, Black, sq("d4"))
	g := NewGameFromPosition(p, White, Casual)

	require.NoError(t, g.Move(sq("e2"), sq("e4")))
	_, ok := g.EnPassantTarget()
	require.True(t, ok)
	assert.Contains(t, g.Options(Black)[blackPawn], sq("e3"))

	// Black plays something else; the chance is gone.
	require.NoError(t, g.Move(sq("a8"), sq("b8")))
	_, ok = g.EnPassantTarget()
	assert.False(t, ok)

	require.NoError(t, g.Move(sq("a1"), sq("b1")))
	assert.NotContains(t, g.Options(Black)[blackPawn], sq("e3"))
	err := g.Move(sq("d4"), sq("e3"))
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestSingleStepDoesNotSetTarget(t *testing.T) {
	g := NewGame(Casual)
	require.NoError(t, g.Move(sq("e2"), sq("e3")))
	_, ok := g.EnPassantTarget()
	assert.False(t, ok)
}

func TestKingsideCastlingScenario(t *testing.T) {
	p := EmptyPosition()
	p.Place(King, White, Sq(4, 7))
	p.Place(Rook, White, Sq(7, 7))
	p.Place(King, Black, Sq(4, 0))
	p.Place(Pawn, Black, Sq(0, 1))
	p.SetCastling(White, CastlingRights{})
	g := NewGameFromPosition(p, White, Casual)

	require.True(t, g.Click(Sq(4, 7)))
	assert.Contains(t, g.ValidMoves(), Sq(6, 7))
	require.True(t, g.Click(Sq(6, 7)))

	king, ok := g.PieceAt(Sq(6, 7))
	require.True(t, ok)
	assert.Equal(t, King, king.Kind)
	rook, ok := g.PieceAt(Sq(5, 7))
	require.True(t, ok)
	assert.Equal(t, Rook, rook.Kind)
	_, ok = g.PieceAt(Sq(7, 7))
	assert.False(t, ok)

	rights := g.CastlingRights(White)
	assert.True(t, rights.KingMoved)
	assert.True(t, rights.KingsideRookMoved)
	assert.Empty(t, g.Captured(White))
	assert.Equal(t, BlackSelect, g.TurnStep())

	last, _ := g.LastMove()
	assert.Equal(t, MoveCastleKingside, last.Kind)
}

func TestQueensideCastlingClearsEnPassant(t *testing.T) {
	p := EmptyPosition()
	p.Place(King, Black, sq("e8"))
	p.Place(Rook, Black, sq("a8"))
	p.Place(King, White, sq("h1"))
	p.Place(Pawn, White, sq("b2"))
	p.SetCastling(Black, CastlingRights{})
	g := NewGameFromPosition(p, White, Casual)

	require.NoError(t, g.Move(sq("b2"), sq("b4")))
	_, ok := g.EnPassantTarget()
	require.True(t, ok)

	require.NoError(t, g.Move(sq("e8"), sq("c8")))
	rook, ok := g.PieceAt(sq("d8"))
	require.True(t, ok)
	assert.Equal(t, Rook, rook.Kind)
	assert.True(t, g.CastlingRights(Black).KingMoved)
	assert.True(t, g.CastlingRights(Black).QueensideRookMoved)
	assert.False(t, g.CastlingRights(Black).KingsideRookMoved)

	_, ok = g.EnPassantTarget()
	assert.False(t, ok)
}

func TestRookMoveFlipsCastlingRight(t *testing.T) {
	g := NewGame(Casual)
	for _, mv := range [][2]string{{"h2", "h4"}, {"a7", "a5"}, {"h1", "h3"}, {"a8", "a6"}} {
		require.NoError(t, g.Move(sq(mv[0]), sq(mv[1])))
	}
	assert.True(t, g.CastlingRights(White).KingsideRookMoved)
	assert.False(t, g.CastlingRights(White).QueensideRookMoved)
	assert.True(t, g.CastlingRights(Black).QueensideRookMoved)
	assert.False(t, g.CastlingRights(Black).KingMoved)

	// Moving back does not restore the right.
	require.NoError(t, g.Move(sq("h3"), sq("h1")))
	assert.True(t, g.CastlingRights(White).KingsideRookMoved)
}

func TestCapturedCornerRookLosesCastlingRight(t *testing.T) {
	p := EmptyPosition()
	p.Place(King, White, sq("e1"))
	p.Place(Rook, White, sq("h1"))
	p.Place(King, Black, sq("e8"))
	p.Place(Bishop, Black, sq("b7"))
	p.SetCastling(White, CastlingRights{})
	g := NewGameFromPosition(p, Black, Casual)

	require.NoError(t, g.Move(sq("b7"), sq("h1")))
	assert.True(t, g.CastlingRights(White).KingsideRookMoved)

	king, _ := g.Position().King(White)
	assert.NotContains(t, g.Options(White)[king.ID], sq("g1"))
}

func TestKingCaptureEndsGame(t *testing.T) {
	p := EmptyPosition()
	p.Place(King, White, sq("h1"))
	p.Place(Rook, White, sq("a1"))
	p.Place(King, Black, sq("a8"))
	p.Place(Pawn, Black, sq("h7"))
	g := NewGameFromPosition(p, White, Casual)

	require.NoError(t, g.Move(sq("a1"), sq("a8")))

	winner, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, White, winner)
	assert.Equal(t, ReasonKingCaptured, g.EndReason())
	assert.Equal(t, []PieceKind{King}, g.Captured(White))

	// Frozen: no clicks, no forfeit, no moves.
	assert.False(t, g.Click(sq("h7")))
	assert.False(t, g.ClickRegion(RegionForfeit))
	assert.ErrorIs(t, g.Forfeit(), ErrGameOver)
	assert.ErrorIs(t, g.Move(sq("h7"), sq("h6")), ErrGameOver)

	g.Restart()
	assert.False(t, g.Over())
	assert.Equal(t, WhiteSelect, g.TurnStep())
	_, ok = g.PieceAt(sq("a1"))
	assert.True(t, ok)
	assert.Empty(t, g.Captured(White))
}

func TestPromotionSuspendsInput(t *testing.T) {
	p := EmptyPosition()
	p.Place(King, White, sq("h1"))
	pawn := p.Place(Pawn, White, sq("b7"))
	p.Place(King, Black, sq("h8"))
	g := NewGameFromPosition(p, White, Casual)

	require.NoError(t, g.Move(sq("b7"), sq("b8")))

	promo, ok := g.PendingPromotion()
	require.True(t, ok)
	assert.Equal(t, Promotion{Piece: pawn, Side: White, Square: sq("b8")}, promo)
	assert.Equal(t, BlackSelect, g.TurnStep(), "turn already flipped")

	// Only the promotion choices are accepted.
	assert.False(t, g.Click(sq("h8")))
	assert.False(t, g.ClickRegion(RegionForfeit))
	assert.ErrorIs(t, g.Move(sq("h8"), sq("g8")), ErrPromotionPending)
	assert.ErrorIs(t, g.Forfeit(), ErrPromotionPending)
	assert.Equal(t, BlackSelect, g.TurnStep())

	require.True(t, g.ClickRegion(RegionPromoteQueen))
	_, ok = g.PendingPromotion()
	assert.False(t, ok)
	assert.Equal(t, BlackSelect, g.TurnStep(), "resolution does not advance the turn")

	queen, ok := g.PieceAt(sq("b8"))
	require.True(t, ok)
	assert.Equal(t, Queen, queen.Kind)
	assert.Equal(t, pawn, queen.ID)
	assert.Contains(t, g.Options(White)[pawn], sq("g8"))
	assert.True(t, g.InCheck(Black))

	assert.True(t, g.Click(sq("h8")))
}

func TestPromoteErrors(t *testing.T) {
	g := NewGame(Casual)
	assert.ErrorIs(t, g.Promote(Queen), ErrNoPromotionPending)

	p := EmptyPosition()
	p.Place(King, White, sq("h1"))
	p.Place(Pawn, Black, sq("c2"))
	p.Place(King, Black, sq("h8"))
	g = NewGameFromPosition(p, Black, Casual)
	require.NoError(t, g.Move(sq("c2"), sq("c1")))

	assert.ErrorIs(t, g.Promote(King), ErrInvalidPromotion)
	assert.ErrorIs(t, g.Promote(Pawn), ErrInvalidPromotion)
	require.NoError(t, g.Promote(Knight))

	knight, _ := g.PieceAt(sq("c1"))
	assert.Equal(t, Knight, knight.Kind)
	assert.Equal(t, WhiteSelect, g.TurnStep())
}

func TestForfeitScenario(t *testing.T) {
	g := NewGame(Casual)
	require.True(t, g.Click(sq("e2")))
	require.Equal(t, WhiteMove, g.TurnStep())

	require.True(t, g.ClickRegion(RegionForfeit))
	winner, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, Black, winner)
	assert.Equal(t, ReasonForfeit, g.EndReason())

	assert.False(t, g.Click(sq("e4")))
	assert.False(t, g.Click(sq("d2")))
	_, stillHome := g.PieceAt(sq("e2"))
	assert.True(t, stillHome)

	g.Restart()
	assert.False(t, g.Over())
	assert.Equal(t, NoPiece, g.Selection())
}

func TestBlackForfeitGivesWhiteTheWin(t *testing.T) {
	g := NewGame(Casual)
	require.NoError(t, g.Move(sq("e2"), sq("e4")))
	require.NoError(t, g.Forfeit())
	winner, _ := g.Winner()
	assert.Equal(t, White, winner)
}

func TestMoveErrors(t *testing.T) {
	g := NewGame(Casual)

	assert.ErrorIs(t, g.Move(sq("e4"), sq("e5")), ErrNoPiece)
	assert.ErrorIs(t, g.Move(sq("e7"), sq("e5")), ErrNoPiece)
	assert.ErrorIs(t, g.Move(sq("e2"), sq("e5")), ErrIllegalMove)
	assert.Equal(t, WhiteSelect, g.TurnStep())
}

func TestInCheckIsInformational(t *testing.T) {
	p := EmptyPosition()
	p.Place(King, White, sq("e1"))
	p.Place(Rook, Black, sq("e8"))
	p.Place(King, Black, sq("a8"))
	g := NewGameFromPosition(p, White, Casual)

	assert.True(t, g.InCheck(White))
	assert.False(t, g.InCheck(Black))

	// Casual rules still let white ignore the check.
	king, _ := g.Position().King(White)
	assert.Contains(t, g.Options(White)[king.ID], sq("e2"))
	require.NoError(t, g.Move(sq("e1"), sq("e2")))
	assert.True(t, g.InCheck(White))
}

func TestGamesAreIndependent(t *testing.T) {
	a := NewGame(Casual)
	b := NewGame(Casual)

	require.NoError(t, a.Move(sq("e2"), sq("e4")))
	assert.Equal(t, BlackSelect, a.TurnStep())
	assert.Equal(t, WhiteSelect, b.TurnStep())
	_, moved := b.PieceAt(sq("e4"))
	assert.False(t, moved)
}

func TestRestartAfterMovesMatchesFreshGame(t *testing.T) {
	g := NewGame(Casual)
	for _, mv := range [][2]string{{"e2", "e4"}, {"d7", "d5"}, {"e4", "d5"}, {"e8", "d7"}} {
		require.NoError(t, g.Move(sq(mv[0]), sq(mv[1])))
	}
	g.Restart()

	fresh := NewGame(Casual)
	assert.Equal(t, fresh.FEN(), g.FEN())
	assert.Equal(t, fresh.Options(White), g.Options(White))
	assert.Empty(t, g.Captured(White))
	assert.Equal(t, CastlingRights{}, g.CastlingRights(Black))
	assert.Zero(t, g.Plies())
}
