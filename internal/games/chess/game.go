// Package chess hosts the chess engine on the platform: it lays the board
// out in terminal cells, turns clicks and keys into engine calls, and draws
// the position into a core.Screen.
package chess

import (
	"github.com/vovakirdan/tui-chess/internal/config"
	"github.com/vovakirdan/tui-chess/internal/core"
	"github.com/vovakirdan/tui-chess/internal/engine"
	"github.com/vovakirdan/tui-chess/internal/registry"
)

// Variant IDs registered with the platform.
const (
	VariantCasual = "chess"
	VariantStrict = "chess_strict"
)

// Game implements registry.Game for two players sharing one terminal.
type Game struct {
	variant string
	cfg     config.ChessConfig
	palette palette
	game    *engine.Game

	layout   Layout
	tooSmall bool
	screenW  int
	screenH  int

	tick    uint64
	cursor  engine.Square
	outcome *core.Outcome
}

// Package-level variables for config
var (
	configPath  string
	rulesPreset config.RulesPreset
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetRulesPreset sets the rules preset applied on top of the loaded config.
// Unknown names are ignored.
func SetRulesPreset(preset string) {
	p, err := config.ParseRulesPreset(preset)
	if err != nil {
		return
	}
	rulesPreset = p
}

// New creates a casual game: check is shown but never enforced.
func New() *Game {
	return &Game{variant: VariantCasual}
}

// NewStrict creates a game that hides moves leaving the mover's king in check.
func NewStrict() *Game {
	return &Game{variant: VariantStrict}
}

func init() {
	registry.Register(VariantCasual, func() registry.Game {
		return New()
	})
	registry.Register(VariantStrict, func() registry.Game {
		return NewStrict()
	})
}

// ID returns the variant identifier of the rules in effect. A casual
// game switched to strict rules by --rules or the config reports
// VariantStrict, so its results are filed under the rules it was played by.
func (g *Game) ID() string {
	rules := g.Rules()
	if g.game != nil {
		rules = g.game.Rules()
	}
	if rules.FilterSelfCheck {
		return VariantStrict
	}
	return VariantCasual
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.ID() == VariantStrict {
		return "Chess (strict)"
	}
	return "Chess"
}

// Reset loads the config and starts a new game from the standard array.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	chessCfg, err := config.LoadChess(configPath)
	if err != nil {
		chessCfg = config.DefaultChessConfig()
	}
	config.ApplyRulesPreset(&chessCfg, rulesPreset)
	g.Configure(chessCfg)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.restart()
}

// Configure replaces the presentation and rules config. The rules take
// effect on the next restart.
func (g *Game) Configure(cfg config.ChessConfig) {
	g.cfg = cfg
	g.palette = newPalette(cfg.Theme)
	g.Resize(g.screenW, g.screenH)
}

// Resize recomputes the layout without touching the game in progress.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	layout, fits := NewLayout(g.cfg.Layout, w, h)
	g.layout = layout
	g.tooSmall = !fits
}

// Rules returns the ruleset used for new games of this variant.
func (g *Game) Rules() engine.Rules {
	if g.variant == VariantStrict || g.cfg.Rules.FilterSelfCheck {
		return engine.Strict
	}
	return engine.Casual
}

func (g *Game) restart() {
	g.game = engine.NewGame(g.Rules())
	g.tick = 0
	g.cursor = engine.Sq(4, 6)
	g.outcome = nil
}

// Engine exposes the underlying rules engine, mostly for tests and tools.
func (g *Game) Engine() *engine.Game {
	return g.game
}

// Layout returns the current screen layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.game.Over() {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.game.Restart()
			g.outcome = nil
		}
		return core.StepResult{State: g.State()}
	}

	if g.cfg.Input.Mouse {
		for _, c := range in.Clicks {
			g.click(c.X, c.Y)
		}
	}
	g.handleKeys(in)

	if g.game.Over() && g.outcome == nil {
		g.outcome = g.buildOutcome()
	}
	return core.StepResult{State: g.State()}
}

// click routes one pointer press. Clicks that land nowhere are ignored.
func (g *Game) click(x, y int) {
	if g.game.Over() {
		return
	}
	_, promoting := g.game.PendingPromotion()
	t := g.layout.Hit(x, y, promoting)
	switch {
	case t.Region != engine.RegionNone:
		g.game.ClickRegion(t.Region)
	case t.OnBoard:
		g.cursor = t.Square
		g.game.Click(t.Square)
	}
}

func (g *Game) handleKeys(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	for i, a := range core.ChoiceActions {
		if in.Has(a) {
			g.game.ClickRegion(promotionRegions[i])
		}
	}

	if in.Has(core.ActionForfeit) {
		g.game.ClickRegion(engine.RegionForfeit)
	}
	if in.Has(core.ActionConfirm) {
		g.game.Click(g.cursor)
	}
}

func (g *Game) moveCursor(df, dr int) {
	next := g.cursor.Offset(df, dr)
	if g.cfg.Input.CursorWrap {
		next = engine.Sq(wrap(next.File), wrap(next.Rank))
	}
	if next.Valid() {
		g.cursor = next
	}
}

func wrap(v int) int {
	return (v%engine.BoardSize + engine.BoardSize) % engine.BoardSize
}

// Cursor returns the keyboard cursor square.
func (g *Game) Cursor() engine.Square {
	return g.cursor
}

func (g *Game) buildOutcome() *core.Outcome {
	winner, _ := g.game.Winner()
	return &core.Outcome{
		Winner:        winner.String(),
		Reason:        g.game.EndReason().String(),
		Plies:         g.game.Plies(),
		WhiteCaptures: len(g.game.Captured(engine.White)),
		BlackCaptures: len(g.game.Captured(engine.Black)),
		FEN:           g.game.FEN(),
	}
}

// checkVisible reports whether the king-in-check highlight is lit on this tick.
func (g *Game) checkVisible() bool {
	period := uint64(g.cfg.Theme.CheckFlashPeriod)
	if period == 0 {
		return true
	}
	return g.tick%period < uint64(g.cfg.Theme.CheckFlashVisible)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	_, promoting := g.game.PendingPromotion()
	return core.GameState{
		GameOver: g.game.Over(),
		Paused:   g.tooSmall || promoting,
		Outcome:  g.outcome,
	}
}
