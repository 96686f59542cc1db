package engine

import (
	"sort"
	"testing"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinnedRook() *Position {
	p := EmptyPosition()
	p.Place(King, White, sq("e1"))
	p.Place(Rook, White, sq("e2"))
	p.Place(Rook, Black, sq("e8"))
	p.Place(King, Black, sq("a8"))
	return p
}

func TestStrictRulesKeepPinnedRookOnFile(t *testing.T) {
	g := NewGameFromPosition(pinnedRook(), White, Strict)
	rook, ok := g.PieceAt(sq("e2"))
	require.True(t, ok)

	assert.Equal(t, squares("e3", "e4", "e5", "e6", "e7", "e8"), g.Options(White)[rook.ID])

	err := g.Move(sq("e2"), sq("a2"))
	assert.ErrorIs(t, err, ErrIllegalMove)
}

func TestCasualRulesAllowSelfCheck(t *testing.T) {
	g := NewGameFromPosition(pinnedRook(), White, Casual)
	rook, _ := g.PieceAt(sq("e2"))

	assert.Contains(t, g.Options(White)[rook.ID], sq("a2"))
	require.NoError(t, g.Move(sq("e2"), sq("a2")))
	assert.True(t, g.InCheck(White))

	// The exposed king can then simply be taken.
	require.NoError(t, g.Move(sq("e8"), sq("e1")))
	winner, ok := g.Winner()
	require.True(t, ok)
	assert.Equal(t, Black, winner)
}

func TestStrictRulesLeaveNoMovesWhenMated(t *testing.T) {
	p := EmptyPosition()
	p.Place(King, White, sq("h1"))
	p.Place(Pawn, White, sq("g2"))
	p.Place(Pawn, White, sq("h2"))
	p.Place(Rook, Black, sq("a1"))
	p.Place(King, Black, sq("a8"))
	g := NewGameFromPosition(p, White, Strict)

	assert.True(t, g.InCheck(White))
	assert.Zero(t, countMoves(g.Options(White)))
}

// pinnedAttacker leaves the white king attacked by a black rook that is
// itself pinned to its own king along the fourth rank.
func pinnedAttacker() *Position {
	p := EmptyPosition()
	p.Place(King, White, sq("e1"))
	p.Place(Rook, White, sq("h4"))
	p.Place(Rook, Black, sq("e4"))
	p.Place(King, Black, sq("a4"))
	return p
}

func TestCheckIgnoresSelfCheckFilter(t *testing.T) {
	for _, rules := range []Rules{Casual, Strict} {
		g := NewGameFromPosition(pinnedAttacker(), White, rules)
		assert.True(t, g.InCheck(White), "rules %+v", rules)
		assert.False(t, g.InCheck(Black), "rules %+v", rules)
	}

	g := NewGameFromPosition(pinnedAttacker(), White, Strict)
	king, ok := g.PieceAt(sq("e1"))
	require.True(t, ok)
	assert.NotContains(t, g.Options(White)[king.ID], sq("e2"))
}

// moveSet flattens destination lists into sorted "e2e4" strings.
func moveSet(p *Position, opts map[PieceID][]Square) []string {
	var out []string
	for id, moves := range opts {
		pc, _ := p.Piece(id)
		for _, to := range moves {
			out = append(out, pc.Square.String()+to.String())
		}
	}
	sort.Strings(out)
	return out
}

// referenceMoveSet asks an independent move generator for the legal moves
// of the same position. Promotions collapse to a single from/to pair.
func referenceMoveSet(t *testing.T, fen string) []string {
	t.Helper()
	opt, err := chess.FEN(fen)
	require.NoError(t, err)
	game := chess.NewGame(opt)

	seen := make(map[string]bool)
	var out []string
	for _, m := range game.ValidMoves() {
		key := m.S1().String() + m.S2().String()
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func TestStrictRulesMatchReferenceGenerator(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Game
	}{
		{
			name:  "starting array",
			setup: func(t *testing.T) *Game { return NewGame(Strict) },
		},
		{
			name: "open game with castling available",
			setup: func(t *testing.T) *Game {
				return played(t, "e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5")
			},
		},
		{
			name: "en passant available",
			setup: func(t *testing.T) *Game {
				return played(t, "e2e4", "a7a6", "e4e5", "d7d5")
			},
		},
		{
			name: "pinned rook",
			setup: func(t *testing.T) *Game {
				return NewGameFromPosition(pinnedRook(), White, Strict)
			},
		},
		{
			name: "king in check",
			setup: func(t *testing.T) *Game {
				p := EmptyPosition()
				p.Place(King, Black, sq("e8"))
				p.Place(Queen, Black, sq("e5"))
				p.Place(Knight, White, sq("c3"))
				p.Place(King, White, sq("e1"))
				return NewGameFromPosition(p, White, Strict)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.setup(t)
			side := g.SideToMove()
			got := moveSet(g.Position(), g.Options(side))
			want := referenceMoveSet(t, g.FEN())
			assert.Equal(t, want, got, "fen %s", g.FEN())
		})
	}
}

func played(t *testing.T, moves ...string) *Game {
	t.Helper()
	g := NewGame(Strict)
	for _, mv := range moves {
		require.NoError(t, g.Move(sq(mv[:2]), sq(mv[2:])), mv)
	}
	return g
}
