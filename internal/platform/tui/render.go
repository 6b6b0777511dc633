package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type cellColors struct {
	fg, bg string
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// A nil renderer uses lipgloss's default (stdout) renderer; SSH sessions pass
// their own so the client's color profile is honored.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[cellColors]lipgloss.Style)
	style := func(c cellColors) lipgloss.Style {
		st, ok := styles[c]
		if !ok {
			st = r.NewStyle().
				Foreground(lipgloss.Color(c.fg)).
				Background(lipgloss.Color(c.bg))
			styles[c] = st
		}
		return st
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{cell.FG.Hex(), cell.BG.Hex()}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{cell.FG.Hex(), cell.BG.Hex()}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(style(start).Render(run.String()))
		}
	}
	return sb.String()
}
