package chess

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-chess/internal/config"
	"github.com/vovakirdan/tui-chess/internal/core"
	"github.com/vovakirdan/tui-chess/internal/engine"
)

// palette is the theme resolved to screen colors.
type palette struct {
	white, black        core.Color
	light, dark         core.Color
	selected, validMove core.Color
	check, checkSquare  core.Color
	cursor, panel       core.Color
	button, text        core.Color
}

func newPalette(t config.ChessTheme) palette {
	return palette{
		white:       colorOr(t.WhitePiece, core.ColorBrightWhite),
		black:       colorOr(t.BlackPiece, core.ColorBlack),
		light:       colorOr(t.LightSquare, core.ColorLightWood),
		dark:        colorOr(t.DarkSquare, core.ColorDarkWood),
		selected:    colorOr(t.Selected, core.ColorBrightYellow),
		validMove:   colorOr(t.ValidMove, core.ColorBrightGreen),
		check:       colorOr(t.Check, core.ColorBrightRed),
		checkSquare: colorOr(t.CheckSquare, core.ColorFirebrick),
		cursor:      colorOr(t.Cursor, core.ColorBrightCyan),
		panel:       colorOr(t.Panel, core.ColorBrown),
		button:      colorOr(t.Button, core.ColorRed),
		text:        colorOr(t.Text, core.ColorDefault),
	}
}

func colorOr(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

func (p palette) side(s engine.Side) core.Color {
	if s == engine.White {
		return p.white
	}
	return p.black
}

// moveDot marks an empty destination square.
const moveDot = '•'

var unicodeGlyphs = [2][6]rune{
	engine.White: {'♙', '♘', '♗', '♖', '♕', '♔'},
	engine.Black: {'♟', '♞', '♝', '♜', '♛', '♚'},
}

var letterGlyphs = [2][6]rune{
	engine.White: {'P', 'N', 'B', 'R', 'Q', 'K'},
	engine.Black: {'p', 'n', 'b', 'r', 'q', 'k'},
}

// glyph returns the rune for a piece in the configured glyph set.
func (g *Game) glyph(side engine.Side, kind engine.PieceKind) rune {
	if g.cfg.Layout.Glyphs == config.GlyphsLetters {
		return letterGlyphs[side][kind]
	}
	return unicodeGlyphs[side][kind]
}

// statusText holds the four turn-step prompts, indexed by engine.TurnStep.
var statusText = [4]string{
	"White: Select a Piece to Move!",
	"White: Select a Destination!",
	"Black: Select a Piece to Move!",
	"Black: Select a Destination!",
}

const keyHelp = "arrows move · enter select · f forfeit · 1-4 promote · q quit"

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderTitle(dst)
	g.renderBoard(dst)
	g.renderPieces(dst)
	g.renderHighlights(dst)
	g.renderCheck(dst)
	g.renderCursor(dst)
	g.renderCaptured(dst)
	g.renderStatus(dst)

	if _, ok := g.game.PendingPromotion(); ok {
		g.renderPromotion(dst)
	}
	if g.game.Over() {
		g.renderGameOver(dst)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", g.layout.TotalW, g.layout.TotalH))
}

func (g *Game) renderTitle(dst *core.Screen) {
	l := g.layout
	dst.DrawTextCenteredIn(core.NewRect(l.Board.X, 0, l.Panel.Right()-l.Board.X, 1), 0, g.Title(), g.palette.text)
}

func (g *Game) renderBoard(dst *core.Screen) {
	l := g.layout
	for rank := range engine.BoardSize {
		for file := range engine.BoardSize {
			dst.ShadeRect(l.SquareRect(engine.Sq(file, rank)), g.squareColor(file, rank))
		}
	}

	if !l.Coordinates {
		return
	}
	for i := range engine.BoardSize {
		row := l.PieceCell(engine.Sq(0, i)).Y
		dst.DrawTextColor(l.Board.X-coordMarginW, row, fmt.Sprint(engine.BoardSize-i), g.palette.text)
		col := l.PieceCell(engine.Sq(i, 0)).X
		dst.SetWithColor(col, l.Board.Bottom(), rune('a'+i), g.palette.text)
	}
}

// squareColor is the background of a board square. a8 (file 0, rank 0)
// is light.
func (g *Game) squareColor(file, rank int) core.Color {
	if (file+rank)%2 == 1 {
		return g.palette.dark
	}
	return g.palette.light
}

func (g *Game) renderPieces(dst *core.Screen) {
	for _, side := range []engine.Side{engine.White, engine.Black} {
		for _, pc := range g.game.Pieces(side) {
			c := g.layout.PieceCell(pc.Square)
			dst.SetWithColor(c.X, c.Y, g.glyph(pc.Side, pc.Kind), g.palette.side(pc.Side))
		}
	}
}

// bracket marks a square with a pair of runes beside the piece cell.
func (g *Game) bracket(dst *core.Screen, sq engine.Square, left, right rune, color core.Color) {
	c := g.layout.PieceCell(sq)
	dst.SetWithColor(c.X-1, c.Y, left, color)
	dst.SetWithColor(c.X+1, c.Y, right, color)
}

func (g *Game) renderHighlights(dst *core.Screen) {
	sel := g.game.Selection()
	if sel == engine.NoPiece {
		return
	}
	if pc, ok := g.game.Position().Piece(sel); ok {
		g.bracket(dst, pc.Square, '[', ']', g.palette.selected)
	}
	for _, sq := range g.game.ValidMoves() {
		if _, occupied := g.game.PieceAt(sq); occupied {
			g.bracket(dst, sq, '(', ')', g.palette.validMove)
			continue
		}
		c := g.layout.PieceCell(sq)
		dst.SetWithColor(c.X, c.Y, moveDot, g.palette.validMove)
	}
}

// renderCheck flashes the king of the side to move while it stands on a
// square the opponent can reach.
func (g *Game) renderCheck(dst *core.Screen) {
	if g.game.Over() || !g.checkVisible() {
		return
	}
	side := g.game.SideToMove()
	if !g.game.InCheck(side) {
		return
	}
	king, ok := g.game.Position().King(side)
	if !ok {
		return
	}
	dst.ShadeRect(g.layout.SquareRect(king.Square), g.palette.checkSquare)
	g.bracket(dst, king.Square, '!', '!', g.palette.check)
}

func (g *Game) renderCursor(dst *core.Screen) {
	r := g.layout.SquareRect(g.cursor)
	y := g.layout.PieceCell(g.cursor).Y
	dst.SetWithColor(r.X, y, '▸', g.palette.cursor)
	dst.SetWithColor(r.Right()-1, y, '◂', g.palette.cursor)
}

// renderCaptured lists each side's captures in the right panel, oldest first.
// The left column shows what white has taken, the right what black has.
func (g *Game) renderCaptured(dst *core.Screen) {
	p := g.layout.Panel
	dst.ShadeRect(p, g.palette.panel)
	dst.DrawBoxColor(p, g.palette.text)
	dst.DrawTextCenteredIn(p, p.Y, " Captured ", g.palette.text)

	colW := (p.W - 2) / 2
	for i, side := range []engine.Side{engine.White, engine.Black} {
		x := p.X + 1 + i*colW
		header := core.NewRect(x, p.Y+1, colW, 1)
		dst.DrawTextCenteredIn(header, header.Y, capitalize(side.String()), g.palette.side(side))

		perRow := (colW - 1) / 2
		if perRow < 1 {
			perRow = 1
		}
		for n, kind := range g.game.Captured(side) {
			cx := x + 1 + (n%perRow)*2
			cy := p.Y + 2 + n/perRow
			if cy >= p.Bottom()-1 {
				break
			}
			victim := side.Opponent()
			dst.SetWithColor(cx, cy, g.glyph(victim, kind), g.palette.side(victim))
		}
	}
}

func (g *Game) renderStatus(dst *core.Screen) {
	s := g.layout.Status
	text := statusText[g.game.TurnStep()]
	side := g.game.SideToMove()

	switch promo, promoting := g.game.PendingPromotion(); {
	case g.game.Over():
		winner, _ := g.game.Winner()
		text = fmt.Sprintf("%s won the game!", capitalize(winner.String()))
	case promoting:
		text = fmt.Sprintf("%s: Choose a promotion!", capitalize(promo.Side.String()))
	}
	dst.DrawTextColor(s.X, s.Y, text, g.palette.side(side))

	if !g.game.Over() && g.game.InCheck(side) {
		dst.DrawTextColor(s.X+len(text)+2, s.Y, "CHECK", g.palette.check)
	}

	dst.DrawTextColor(g.layout.Forfeit.X, g.layout.Forfeit.Y, forfeitLabel, g.palette.button)
	dst.DrawTextColor(s.X, s.Y+2, keyHelp, core.ColorGray)
}

func (g *Game) renderPromotion(dst *core.Screen) {
	r := g.layout.Promotion
	promo, _ := g.game.PendingPromotion()

	dst.DrawRectColor(r, ' ', core.ColorDefault)
	dst.ShadeRect(r, g.palette.panel)
	dst.DrawBoxColor(r, g.palette.selected)
	dst.DrawTextColor(r.X+2, r.Y+1, "Promote to:", g.palette.text)
	for i, kind := range engine.PromotionKinds {
		opt := g.layout.PromoteOptions[i]
		label := fmt.Sprintf(" %d  %c  %s", i+1, g.glyph(promo.Side, kind), capitalize(kind.String()))
		dst.DrawTextColor(opt.X, opt.Y, label, g.palette.side(promo.Side))
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	r := g.layout.GameOver
	winner, _ := g.game.Winner()

	dst.DrawRectColor(r, ' ', core.ColorDefault)
	dst.ShadeRect(r, g.palette.panel)
	dst.DrawBoxColor(r, g.palette.selected)
	dst.DrawTextCenteredIn(r, r.Y+1, fmt.Sprintf("%s won the game!", capitalize(winner.String())), g.palette.side(winner))
	dst.DrawTextCenteredIn(r, r.Y+2, "Press ENTER to Restart!", g.palette.text)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
