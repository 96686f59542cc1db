package chess

import (
	"github.com/vovakirdan/tui-chess/internal/config"
	"github.com/vovakirdan/tui-chess/internal/core"
	"github.com/vovakirdan/tui-chess/internal/engine"
)

const (
	forfeitLabel = "[ FORFEIT ]"
	promoBoxW    = 22
	promoBoxH    = 7 // border, title, four options, border
	gameOverBoxW = 30
	gameOverBoxH = 4
	coordMarginW = 2 // rank digit plus a space
	panelGap     = 2
	statusRows   = 3 // status line, blank, key help
	titleRows    = 1
)

// Layout places every UI element in screen cells. All rectangles are
// absolute, so hit testing works directly on pointer coordinates.
type Layout struct {
	SquareW, SquareH int

	Board     core.Rect
	Panel     core.Rect
	Status    core.Rect
	Forfeit   core.Rect
	Promotion core.Rect
	GameOver  core.Rect

	// PromoteOptions are the four clickable rows inside Promotion, in
	// engine.PromotionKinds order.
	PromoteOptions [4]core.Rect

	Coordinates bool
	TotalW      int
	TotalH      int
}

// NewLayout computes positions for a screen of the given size. It reports
// false when the screen is too small to hold the board.
func NewLayout(cfg config.ChessLayout, screenW, screenH int) (Layout, bool) {
	l := Layout{
		SquareW:     cfg.SquareW,
		SquareH:     cfg.SquareH,
		Coordinates: cfg.Coordinates,
	}

	boardW := engine.BoardSize * cfg.SquareW
	boardH := engine.BoardSize * cfg.SquareH
	margin := 0
	labelRows := 0
	if cfg.Coordinates {
		margin = coordMarginW
		labelRows = 1
	}

	l.TotalW = margin + boardW + panelGap + cfg.PanelW
	l.TotalH = titleRows + boardH + labelRows + 1 + statusRows

	originX := 0
	if screenW > l.TotalW {
		originX = (screenW - l.TotalW) / 2
	}

	l.Board = core.NewRect(originX+margin, titleRows, boardW, boardH)
	l.Panel = core.NewRect(l.Board.Right()+panelGap, l.Board.Y, cfg.PanelW, boardH)

	statusY := l.Board.Bottom() + labelRows + 1
	l.Status = core.NewRect(l.Board.X, statusY, l.Panel.Right()-l.Board.X, statusRows)

	forfeitW := len(forfeitLabel)
	l.Forfeit = core.NewRect(l.Status.Right()-forfeitW, statusY, forfeitW, 1)

	bx, by := l.Board.Center()
	l.Promotion = core.NewRect(bx-promoBoxW/2, by-promoBoxH/2, promoBoxW, promoBoxH)
	for i := range l.PromoteOptions {
		l.PromoteOptions[i] = core.NewRect(l.Promotion.X+1, l.Promotion.Y+2+i, promoBoxW-2, 1)
	}
	l.GameOver = core.NewRect(bx-gameOverBoxW/2, by-gameOverBoxH/2, gameOverBoxW, gameOverBoxH)

	fits := screenW >= l.TotalW && screenH >= l.TotalH
	return l, fits
}

// SquareRect returns the screen area of a board square.
func (l Layout) SquareRect(sq engine.Square) core.Rect {
	return core.NewRect(
		l.Board.X+sq.File*l.SquareW,
		l.Board.Y+sq.Rank*l.SquareH,
		l.SquareW,
		l.SquareH,
	)
}

// PieceCell returns the screen cell where a piece glyph is drawn.
func (l Layout) PieceCell(sq engine.Square) core.Point {
	r := l.SquareRect(sq)
	return core.Point{X: r.X + l.SquareW/2, Y: r.Y + (l.SquareH-1)/2}
}

// SquareAt maps a screen cell to the board square under it.
func (l Layout) SquareAt(x, y int) (engine.Square, bool) {
	if !l.Board.Contains(x, y) {
		return engine.Square{}, false
	}
	return engine.Sq((x-l.Board.X)/l.SquareW, (y-l.Board.Y)/l.SquareH), true
}

// Target is what a pointer click landed on.
type Target struct {
	Region  engine.Region // RegionNone when the click hit a board square or nothing
	Square  engine.Square
	OnBoard bool
}

// Hit translates a pointer click into a board square or UI region. While a
// promotion is pending the choice box sits on top of the board and takes
// precedence.
func (l Layout) Hit(x, y int, promoting bool) Target {
	if promoting {
		for i, r := range l.PromoteOptions {
			if r.Contains(x, y) {
				return Target{Region: promotionRegions[i]}
			}
		}
	}
	if l.Forfeit.Contains(x, y) {
		return Target{Region: engine.RegionForfeit}
	}
	if sq, ok := l.SquareAt(x, y); ok {
		return Target{Square: sq, OnBoard: true}
	}
	return Target{}
}

// promotionRegions matches engine.PromotionKinds.
var promotionRegions = [4]engine.Region{
	engine.RegionPromoteQueen,
	engine.RegionPromoteRook,
	engine.RegionPromoteBishop,
	engine.RegionPromoteKnight,
}
