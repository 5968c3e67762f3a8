package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/spinball/internal/core"
)

// palette holds the ANSI color of each core color. ColorDefault is absent
// and renders unstyled.
var palette = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var styleCache = func() map[core.Color]lipgloss.Style {
	m := make(map[core.Color]lipgloss.Style, len(core.Palette))
	for _, c := range core.Palette {
		st := lipgloss.NewStyle()
		if ansi, ok := palette[c]; ok {
			st = st.Foreground(lipgloss.Color(ansi))
		}
		m[c] = st
	}
	return m
}()

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := styleCache[c]; ok {
		return st
	}
	return styleCache[core.ColorDefault]
}

// RenderScreen turns the cell buffer into ANSI text. Neighbouring cells of
// one color are styled as a single run.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	for y := range rows {
		rows[y] = renderRow(s, y)
	}
	return strings.Join(rows, "\n")
}

func renderRow(s *core.Screen, y int) string {
	var out, run strings.Builder
	current := core.ColorDefault

	flush := func() {
		if run.Len() > 0 {
			out.WriteString(styleFor(current).Render(run.String()))
			run.Reset()
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			flush()
			current = cell.Color
		}
		run.WriteRune(cell.Rune)
	}
	flush()
	return out.String()
}

// overlayLines replaces the rows of base starting at row with the given
// lines, each centered in width.
func overlayLines(base string, row, width int, lines []string) string {
	rows := strings.Split(base, "\n")
	for i, line := range lines {
		if y := row + i; y >= 0 && y < len(rows) {
			rows[y] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
		}
	}
	return strings.Join(rows, "\n")
}
