package engine

// offset is a (file, rank) step.
type offset struct{ df, dr int }

// Direction tables. Order is fixed so generated lists are deterministic.
var rookDirs = []offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

var bishopDirs = []offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var knightJumps = []offset{
	{1, 2}, {1, -2}, {2, 1}, {2, -1},
	{-1, 2}, {-1, -2}, {-2, 1}, {-2, -1},
}

var kingSteps = []offset{
	{1, 0}, {1, 1}, {1, -1}, {-1, 0},
	{-1, 1}, {-1, -1}, {0, 1}, {0, -1},
}

// moveRule generates pseudo-legal destinations for a piece of one kind
// standing on from. It reads the position and never mutates it.
type moveRule func(p *Position, from Square, side Side) []Square

// moveRules holds one generator per piece kind.
var moveRules = [...]moveRule{
	Pawn:   pawnMoves,
	Knight: knightMoves,
	Bishop: bishopMoves,
	Rook:   rookMoves,
	Queen:  queenMoves,
	King:   kingMoves,
}

// GenerateFor returns the pseudo-legal destinations for a piece of the given
// kind and side standing on from. Moves that leave the mover's own king in
// check are included.
func (p *Position) GenerateFor(kind PieceKind, from Square, side Side) []Square {
	if !kind.Valid() || !from.Valid() {
		return nil
	}
	return moveRules[kind](p, from, side)
}

// Generate returns the pseudo-legal destinations of the piece with the given ID.
func (p *Position) Generate(id PieceID) []Square {
	pc, ok := p.pieces[id]
	if !ok {
		return nil
	}
	return p.GenerateFor(pc.Kind, pc.Square, pc.Side)
}

// Options returns every pseudo-legal destination list for a side, keyed by piece.
func (p *Position) Options(side Side) map[PieceID][]Square {
	out := make(map[PieceID][]Square, 16)
	for _, pc := range p.Pieces(side) {
		out[pc.ID] = p.GenerateFor(pc.Kind, pc.Square, side)
	}
	return out
}

// Attacks reports whether sq appears in any of side's pseudo-legal move lists.
func (p *Position) Attacks(side Side, sq Square) bool {
	for _, pc := range p.Pieces(side) {
		if containsSquare(p.GenerateFor(pc.Kind, pc.Square, side), sq) {
			return true
		}
	}
	return false
}

func pawnMoves(p *Position, from Square, side Side) []Square {
	var moves []Square
	fwd := side.forward()

	one := from.Offset(0, fwd)
	if one.Valid() && !p.occupied(one) {
		moves = append(moves, one)
		two := from.Offset(0, 2*fwd)
		if from.Rank == side.pawnRank() && two.Valid() && !p.occupied(two) {
			moves = append(moves, two)
		}
	}

	for _, df := range []int{-1, 1} {
		t := from.Offset(df, fwd)
		if !t.Valid() {
			continue
		}
		if owner, ok := p.sideAt(t); ok && owner != side {
			moves = append(moves, t)
		}
	}

	if dest, ok := p.enPassantDestination(from, side); ok {
		moves = append(moves, dest)
	}
	return moves
}

// enPassantDestination returns the en-passant landing square for a pawn of
// side on from, if the capture is available this half-move.
func (p *Position) enPassantDestination(from Square, side Side) (Square, bool) {
	if !p.hasEnPassant || from.Rank != side.enPassantRank() {
		return Square{}, false
	}
	target := p.enPassant
	if target.Rank != from.Rank || abs(target.File-from.File) != 1 {
		return Square{}, false
	}
	victim, ok := p.PieceAt(target)
	if !ok || victim.Kind != Pawn || victim.Side == side {
		return Square{}, false
	}
	return p.enPassantCaptureSquare()
}

func knightMoves(p *Position, from Square, side Side) []Square {
	return p.steps(from, side, knightJumps)
}

func bishopMoves(p *Position, from Square, side Side) []Square {
	return p.rays(from, side, bishopDirs)
}

func rookMoves(p *Position, from Square, side Side) []Square {
	return p.rays(from, side, rookDirs)
}

func queenMoves(p *Position, from Square, side Side) []Square {
	return append(rookMoves(p, from, side), bishopMoves(p, from, side)...)
}

func kingMoves(p *Position, from Square, side Side) []Square {
	moves := p.steps(from, side, kingSteps)

	rights := p.castling[side]
	if rights.KingMoved {
		return moves
	}
	// Only emptiness is checked: squares the king crosses may be attacked.
	if rights.Kingside() && p.emptyRun(from, 1, 2) {
		moves = append(moves, from.Offset(2, 0))
	}
	if rights.Queenside() && p.emptyRun(from, -1, 3) {
		moves = append(moves, from.Offset(-2, 0))
	}
	return moves
}

// steps collects single-jump destinations that are on the board and not
// held by a friendly piece.
func (p *Position) steps(from Square, side Side, jumps []offset) []Square {
	var moves []Square
	for _, j := range jumps {
		t := from.Offset(j.df, j.dr)
		if !t.Valid() {
			continue
		}
		if owner, ok := p.sideAt(t); ok && owner == side {
			continue
		}
		moves = append(moves, t)
	}
	return moves
}

// rays casts along each direction. A ray stops before a friendly piece and
// on an enemy piece.
func (p *Position) rays(from Square, side Side, dirs []offset) []Square {
	var moves []Square
	for _, d := range dirs {
		for t := from.Offset(d.df, d.dr); t.Valid(); t = t.Offset(d.df, d.dr) {
			owner, ok := p.sideAt(t)
			if ok && owner == side {
				break
			}
			moves = append(moves, t)
			if ok {
				break
			}
		}
	}
	return moves
}

// emptyRun reports whether the n squares beside from in direction df are on
// the board and empty.
func (p *Position) emptyRun(from Square, df, n int) bool {
	for i := 1; i <= n; i++ {
		t := from.Offset(df*i, 0)
		if !t.Valid() || p.occupied(t) {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
