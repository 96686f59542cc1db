package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-chess/internal/core"
)

// ansiCodes maps core colors to ANSI 256 codes. ColorDefault has no entry
// and leaves the terminal color alone.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "16",
	core.ColorLightWood:     "223",
	core.ColorDarkWood:      "137",
	core.ColorBrown:         "94",
	core.ColorFirebrick:     "124",
}

// cellColors is the foreground/background pair shared by a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per color pair seen so far.
// SSH sessions render concurrently, so access is locked.
type styleCache struct {
	mu     sync.Mutex
	styles map[cellColors]lipgloss.Style
}

func (c *styleCache) get(key cellColors) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()

	if style, ok := c.styles[key]; ok {
		return style
	}
	style := lipgloss.NewStyle()
	if code, ok := ansiCodes[key.fg]; ok {
		style = style.Foreground(lipgloss.Color(code))
	}
	if code, ok := ansiCodes[key.bg]; ok {
		style = style.Background(lipgloss.Color(code))
	}
	c.styles[key] = style
	return style
}

var styles = &styleCache{styles: make(map[cellColors]lipgloss.Style)}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same colors share one styled run, so a board
// square costs one escape sequence per row.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellColors{fg: cell.Color, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.Color, bg: cell.Bg}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key == (cellColors{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.get(key).Render(run.String()))
		}
	}
	return sb.String()
}
