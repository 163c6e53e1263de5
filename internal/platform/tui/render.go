package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

// styles holds one lipgloss style per palette entry.
var styles = func() [core.NumColors]lipgloss.Style {
	var out [core.NumColors]lipgloss.Style
	for i := range out {
		st := lipgloss.NewStyle()
		if code := core.Color(i).ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		out[i] = st
	}
	return out
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= core.NumColors {
		return styles[core.ColorDefault]
	}
	return styles[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into runs of one color so a run costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run = run[:0]
		current := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != current && len(run) > 0 {
				sb.WriteString(styleFor(current).Render(string(run)))
				run = run[:0]
			}
			current = cell.Color
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(current).Render(string(run)))
		}
	}
	return sb.String()
}
