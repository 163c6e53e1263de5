package tui

import (
	"testing"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '@', core.ColorBrightYellow)
	s.SetColored(0, 1, '#', core.ColorGray)

	// Tests run without a TTY, so lipgloss emits no escape codes.
	got := RenderScreen(s)
	want := "ab@ \n#   "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestStyleForOutOfRange(t *testing.T) {
	st := styleFor(core.Color(200))
	if got := st.Render("x"); got != "x" {
		t.Errorf("styleFor(200).Render = %q, want plain text", got)
	}
}
