package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku"
	"github.com/vovakirdan/keiraku-bomber/internal/games/keiraku/sim"
	"github.com/vovakirdan/keiraku-bomber/internal/registry"
	"github.com/vovakirdan/keiraku-bomber/internal/storage"
)

const (
	minWidthForSidebar = 80 // narrower terminals get a one-line filter instead
	sidebarWidth       = 22
	maxScores          = 100
)

var (
	borderColor  = lipgloss.Color("240")
	accentColor  = lipgloss.Color("229")
	mutedColor   = lipgloss.Color("241")
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	currentStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PrevStage key.Binding
	NextStage key.Binding
	NextMode  key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevStage, k.NextStage, k.NextMode, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevStage, k.NextStage},
		{k.NextMode, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		PrevStage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "prev stage")),
		NextStage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "next stage")),
		NextMode:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "story/free")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists recorded runs per mode, optionally narrowed to the
// stage each run ended on.
type ScoreboardModel struct {
	modes      []registry.GameInfo
	modeCursor int
	stages     sim.Catalog
	filter     int // 0 = all stages, i = stages[i-1]

	store  *storage.Store
	scores []storage.ScoreEntry // every loaded run of the current mode
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		stages: keiraku.Catalog(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) newTable() table.Model {
	avail := m.width - 4
	if m.showSidebar() {
		avail -= sidebarWidth + 4
	}
	dateWidth := min(max(avail-34, 12), 20)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Stage", Width: 10},
			{Title: "Date", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the current mode's runs and stats from the store.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.modeCursor].ID
		if scores, err := m.store.TopScores(id, maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.refreshRows()
}

// visible returns the loaded runs that pass the stage filter, best first.
func (m ScoreboardModel) visible() []storage.ScoreEntry {
	if m.filter == 0 {
		return m.scores
	}
	id := m.stages[m.filter-1].ID
	var out []storage.ScoreEntry
	for _, s := range m.scores {
		if s.Stage == id {
			out = append(out, s)
		}
	}
	return out
}

func (m *ScoreboardModel) refreshRows() {
	entries := m.visible()
	rows := make([]table.Row, len(entries))
	for i, s := range entries {
		rows[i] = table.Row{
			"#" + strconv.Itoa(i+1),
			strconv.Itoa(s.Score),
			m.stageName(s.Stage),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// bestByStage returns the top loaded score per stage ID.
func (m ScoreboardModel) bestByStage() map[string]int {
	best := make(map[string]int)
	for _, s := range m.scores {
		if s.Score > best[s.Stage] {
			best[s.Stage] = s.Score
		}
	}
	return best
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + 1) % len(m.modes)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextStage):
			m.filter = (m.filter + 1) % (len(m.stages) + 1)
			m.refreshRows()
			return m, nil

		case key.Matches(msg, m.keys.PrevStage):
			m.filter = (m.filter + len(m.stages)) % (len(m.stages) + 1)
			m.refreshRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.refreshRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(m.title(), m.width)))
	b.WriteString("\n")
	b.WriteString(centerText(m.statsLine(), m.width))
	b.WriteString("\n\n")

	board := boxStyle.Render(m.tableContent())
	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar(), "  ", board))
	} else {
		b.WriteString(centerText("< "+m.filterName()+" >", m.width))
		b.WriteString("\n\n")
		b.WriteString(board)
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) title() string {
	if len(m.modes) == 0 {
		return "HIGH SCORES"
	}
	return "HIGH SCORES - " + m.modes[m.modeCursor].Title
}

// sidebar lists the stage filters with the best score on each stage.
func (m ScoreboardModel) sidebar() string {
	best := m.bestByStage()

	var sb strings.Builder
	sb.WriteString("Stages\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	line := func(i int, label string, score int) {
		cursor, style := "  ", lipgloss.NewStyle()
		if i == m.filter {
			cursor, style = "> ", currentStyle
		}
		text := fmt.Sprintf("%s%-9s", cursor, label)
		if score > 0 {
			text += fmt.Sprintf(" %7d", score)
		}
		sb.WriteString(style.Render(text))
		sb.WriteString("\n")
	}

	line(0, "All", 0)
	for i, st := range m.stages {
		line(i+1, st.Name, best[st.ID])
	}

	return boxStyle.Width(sidebarWidth).Render(strings.TrimSuffix(sb.String(), "\n"))
}

func (m ScoreboardModel) tableContent() string {
	if len(m.visible()) == 0 {
		empty := mutedStyle.Italic(true).Padding(2, 4)
		if m.filter > 0 && len(m.scores) > 0 {
			return empty.Render("No runs ended on " + m.filterName() + " yet.")
		}
		return empty.Render("No scores recorded yet.\nClear a stage to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) filterName() string {
	if m.filter == 0 {
		return "All stages"
	}
	return m.stages[m.filter-1].Name
}

func (m ScoreboardModel) stageName(id string) string {
	if i, err := m.stages.Index(id); err == nil {
		return m.stages[i].Name
	}
	return id
}

// statsLine summarizes every recorded run of the selected mode.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Average: %.0f  Last: %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
