package engine

// Rules selects optional rule behavior for a game.
type Rules struct {
	// FilterSelfCheck drops generated moves that leave the mover's king on a
	// square the opponent could move to. Off by default: casual play allows
	// such moves, and check is only shown, never enforced.
	FilterSelfCheck bool
}

// Casual is the default ruleset: pseudo-legal moves only.
var Casual = Rules{}

// Strict filters out moves that leave the mover's own king in check.
var Strict = Rules{FilterSelfCheck: true}

// legalOptions returns a side's destination lists under the given rules.
func (p *Position) legalOptions(side Side, rules Rules) map[PieceID][]Square {
	opts := p.Options(side)
	if !rules.FilterSelfCheck {
		return opts
	}
	for id, moves := range opts {
		opts[id] = p.filterSelfCheck(id, moves)
	}
	return opts
}

// filterSelfCheck keeps the destinations after which the mover's king is
// not present in the opponent's regenerated move set. Each candidate is
// played on a scratch copy of the position.
func (p *Position) filterSelfCheck(id PieceID, moves []Square) []Square {
	pc := p.pieces[id]
	kept := moves[:0:0]
	for _, to := range moves {
		scratch := p.Clone()
		scratch.apply(id, to)
		king, ok := scratch.King(pc.Side)
		if ok && scratch.Attacks(pc.Side.Opponent(), king.Square) {
			continue
		}
		kept = append(kept, to)
	}
	return kept
}
