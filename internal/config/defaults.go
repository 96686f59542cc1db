package config

import (
	_ "embed"
)

//go:embed defaults/chess.yaml
var defaultChessYAML []byte

// DefaultChessConfig returns the default chess configuration.
func DefaultChessConfig() ChessConfig {
	return ChessConfig{
		Rules: ChessRules{
			FilterSelfCheck: false,
		},
		Layout: ChessLayout{
			SquareW:     5,
			SquareH:     2,
			PanelW:      20,
			Glyphs:      GlyphsUnicode,
			Coordinates: true,
		},
		Theme: ChessTheme{
			WhitePiece:        "bright_white",
			BlackPiece:        "black",
			LightSquare:       "light_wood",
			DarkSquare:        "dark_wood",
			Selected:          "bright_yellow",
			ValidMove:         "bright_green",
			Check:             "bright_red",
			CheckSquare:       "firebrick",
			Panel:             "brown",
			Cursor:            "bright_cyan",
			Button:            "red",
			Text:              "default",
			CheckFlashPeriod:  30,
			CheckFlashVisible: 15,
		},
		Input: ChessInput{
			Mouse:      true,
			CursorWrap: false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game variant.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chess", "chess_strict":
		return defaultChessYAML
	default:
		return nil
	}
}
