// Package config provides YAML-based configuration loading for the chess
// board: rules, layout, theme and input options.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-chess/internal/core"
)

// ChessConfig contains all configuration for the chess game.
type ChessConfig struct {
	Rules  ChessRules  `yaml:"rules"`
	Layout ChessLayout `yaml:"layout"`
	Theme  ChessTheme  `yaml:"theme"`
	Input  ChessInput  `yaml:"input"`
}

// ChessRules toggles optional rule behavior.
type ChessRules struct {
	// FilterSelfCheck hides moves that leave the mover's own king in check.
	FilterSelfCheck bool `yaml:"filter_self_check"`
}

// ChessLayout defines board geometry in terminal cells.
type ChessLayout struct {
	SquareW     int    `yaml:"square_w"`    // Width of one board square
	SquareH     int    `yaml:"square_h"`    // Height of one board square
	PanelW      int    `yaml:"panel_w"`     // Width of the captured-pieces panel
	Glyphs      string `yaml:"glyphs"`      // "unicode" or "letters"
	Coordinates bool   `yaml:"coordinates"` // Draw file letters and rank numbers
}

// ChessTheme names the colors used for each board element.
// Values are core color names such as "bright_cyan". Squares, the check
// square and panels paint backgrounds; the rest are text colors.
type ChessTheme struct {
	WhitePiece  string `yaml:"white_piece"`
	BlackPiece  string `yaml:"black_piece"`
	LightSquare string `yaml:"light_square"`
	DarkSquare  string `yaml:"dark_square"`
	Selected    string `yaml:"selected"`
	ValidMove   string `yaml:"valid_move"`
	Check       string `yaml:"check"`
	CheckSquare string `yaml:"check_square"` // Background of the king in check
	Panel       string `yaml:"panel"`        // Background of side panels and dialogs
	Cursor      string `yaml:"cursor"`
	Button      string `yaml:"button"`
	Text        string `yaml:"text"`

	// CheckFlashPeriod is the length of the king-in-check flash cycle in
	// ticks; the highlight shows during the first CheckFlashVisible ticks.
	CheckFlashPeriod  int `yaml:"check_flash_period"`
	CheckFlashVisible int `yaml:"check_flash_visible"`
}

// ChessInput defines keyboard and mouse options.
type ChessInput struct {
	Mouse      bool `yaml:"mouse"`       // Accept pointer clicks
	CursorWrap bool `yaml:"cursor_wrap"` // Cursor wraps around board edges
}

// Glyph sets accepted by ChessLayout.Glyphs.
const (
	GlyphsUnicode = "unicode"
	GlyphsLetters = "letters"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can be rendered.
func (c ChessConfig) Validate() error {
	l := c.Layout
	switch {
	case l.SquareW < 3:
		return fmt.Errorf("%w: layout.square_w must be at least 3, got %d", ErrInvalidConfig, l.SquareW)
	case l.SquareH < 1:
		return fmt.Errorf("%w: layout.square_h must be at least 1, got %d", ErrInvalidConfig, l.SquareH)
	case l.PanelW < 12:
		return fmt.Errorf("%w: layout.panel_w must be at least 12, got %d", ErrInvalidConfig, l.PanelW)
	case l.Glyphs != GlyphsUnicode && l.Glyphs != GlyphsLetters:
		return fmt.Errorf("%w: layout.glyphs must be %q or %q, got %q", ErrInvalidConfig, GlyphsUnicode, GlyphsLetters, l.Glyphs)
	}

	t := c.Theme
	if t.CheckFlashPeriod <= 0 || t.CheckFlashVisible < 0 || t.CheckFlashVisible > t.CheckFlashPeriod {
		return fmt.Errorf("%w: theme.check_flash_visible must be within 0..check_flash_period (%d, %d)",
			ErrInvalidConfig, t.CheckFlashVisible, t.CheckFlashPeriod)
	}
	colors := map[string]string{
		"white_piece":  t.WhitePiece,
		"black_piece":  t.BlackPiece,
		"light_square": t.LightSquare,
		"dark_square":  t.DarkSquare,
		"selected":     t.Selected,
		"valid_move":   t.ValidMove,
		"check":        t.Check,
		"check_square": t.CheckSquare,
		"panel":        t.Panel,
		"cursor":       t.Cursor,
		"button":       t.Button,
		"text":         t.Text,
	}
	for key, name := range colors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: theme.%s: unknown color %q", ErrInvalidConfig, key, name)
		}
	}
	return nil
}

// RulesPreset represents a named rules setting selectable from the CLI.
type RulesPreset string

const (
	RulesCasual RulesPreset = "casual"
	RulesStrict RulesPreset = "strict"
)

// ParseRulesPreset validates a preset name. The empty string means no preset.
func ParseRulesPreset(s string) (RulesPreset, error) {
	switch p := RulesPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", RulesCasual, RulesStrict:
		return p, nil
	default:
		return "", fmt.Errorf("unknown rules preset %q (want %q or %q)", s, RulesCasual, RulesStrict)
	}
}

// ApplyRulesPreset modifies the config based on a rules preset.
// The empty preset leaves the config unchanged.
func ApplyRulesPreset(cfg *ChessConfig, preset RulesPreset) {
	switch preset {
	case RulesCasual:
		cfg.Rules.FilterSelfCheck = false
	case RulesStrict:
		cfg.Rules.FilterSelfCheck = true
	}
}
