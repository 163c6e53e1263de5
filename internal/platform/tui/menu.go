package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/keiraku-bomber/internal/core"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
)

const (
	menuStory = iota
	menuFree
	menuScores
	menuItemCount
)

// MenuModel lets users pick story mode, a free play stage or the scoreboard.
type MenuModel struct {
	catalog       sim.Catalog
	cursor        int
	stageCursor   int
	inStageSelect bool
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	help          help.Model

	quitting       bool
	openScoreboard bool
	selected       *MenuResult
}

// NewMenuModel creates a new menu model over the configured stage catalog.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		catalog:   keiraku.Catalog(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	if m.inStageSelect {
		return m.handleStageSelectKey(action)
	}
	return m.handleModeSelectKey(action)
}

func (m MenuModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < menuItemCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case menuStory:
			m.selected = &MenuResult{GameID: keiraku.StoryID, Stage: 0}
			return m, tea.Quit
		case menuFree:
			m.inStageSelect = true
		case menuScores:
			m.openScoreboard = true
			return m, tea.Quit
		}
	case MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handleStageSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp, MenuActionLeft:
		if m.stageCursor > 0 {
			m.stageCursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.stageCursor < len(m.catalog)-1 {
			m.stageCursor++
		}
	case MenuActionSelect:
		m.selected = &MenuResult{GameID: keiraku.FreeID, Stage: m.stageCursor}
		return m, tea.Quit
	case MenuActionBack:
		m.inStageSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inStageSelect {
		return m.viewStageSelect()
	}
	return m.viewModeSelect()
}

func (m MenuModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("K E I R A K U   B O M B E R", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := [menuItemCount]string{
		fmt.Sprintf("Story (%d stages)", len(m.catalog)),
		"Free Play...",
		"High Scores",
	}
	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+mode, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keyMapper.GameHelp()), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewStageSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT STAGE", m.width))
	b.WriteString("\n\n")

	for i, st := range m.catalog {
		cursor := "  "
		if i == m.stageCursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %-10s %-5s", cursor, i+1, st.Name, strings.Repeat("*", st.Difficulty))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen game, or nil if none was chosen.
func (m MenuModel) Selected() *MenuResult {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured by
// its printed width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Stage           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}

func (m MenuModel) result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.selected.GameID
		result.Stage = m.selected.Stage
		result.Config.Stage = m.selected.Stage
	default:
		result.Quit = true
	}
	return result
}
