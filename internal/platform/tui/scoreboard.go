package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show level list sidebar
	sidebarWidth       = 20  // Width of level list sidebar
	tableMinWidth      = 50  // Minimum table width
	maxScores          = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Select    key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	gameID      string
	levels      []int          // Round count per level
	levelCursor int            // Currently selected level index
	store       *storage.Store // Score storage
	scores      []storage.ScoreEntry
	stats       map[int]storage.GameStats // Keyed by level
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show level list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, gameID string, levels []int, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		gameID:      gameID,
		levels:      levels,
		store:       store,
		stats:       make(map[int]storage.GameStats),
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadStats()

	if len(m.levels) > 0 {
		m.loadScores(1)
	}

	return m
}

// loadStats loads the per-level summary shown under the title.
func (m *ScoreboardModel) loadStats() {
	if m.store == nil {
		return
	}
	stats, err := m.store.LevelStats(m.gameID)
	if err != nil {
		return
	}
	for _, st := range stats {
		m.stats[st.Level] = st
	}
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Rounds", Width: 8},
		{Title: "Result", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 14},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// Give spare width to the player column
	if tableWidth > 60 {
		columns[3].Width = tableWidth - 48
		if columns[3].Width > 20 {
			columns[3].Width = 20
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores loads scores for the given level.
func (m *ScoreboardModel) loadScores(level int) {
	if m.store == nil {
		m.scores = nil
		m.updateTableRows()
		return
	}

	scores, err := m.store.TopScoresByLevel(m.gameID, level, maxScores)
	if err != nil {
		m.scores = nil
	} else {
		m.scores = scores
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		result := "lost"
		if s.Won {
			result = "WON"
		}
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			result,
			player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
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

		case key.Matches(msg, m.keys.NextLevel), key.Matches(msg, m.keys.Right):
			if len(m.levels) > 0 {
				m.levelCursor = (m.levelCursor + 1) % len(m.levels)
				m.loadScores(m.levelCursor + 1)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel), key.Matches(msg, m.keys.Left):
			if len(m.levels) > 0 {
				m.levelCursor--
				if m.levelCursor < 0 {
					m.levelCursor = len(m.levels) - 1
				}
				m.loadScores(m.levelCursor + 1)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbStatsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sbHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sbActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbTabStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	sbActiveTab   = sbActiveStyle.Background(lipgloss.Color("57")).Padding(0, 1)
	sbEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.levels) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s", m.levelTitle(m.levelCursor))
	}

	var b strings.Builder
	b.WriteString(sbTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(sbStatsStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	body := m.renderTableContent()
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderLevelList(), "  ", sbBoxStyle.Render(body)))
	} else {
		b.WriteString(centerText(m.renderLevelTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(sbBoxStyle.Render(body))
	}

	b.WriteString("\n")
	b.WriteString(sbHelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderLevelList renders the sidebar: one line per level with its round
// count, marked when someone has won it.
func (m ScoreboardModel) renderLevelList() string {
	var list strings.Builder
	list.WriteString("Levels\n")
	list.WriteString(strings.Repeat("-", sidebarWidth-4))

	for i, rounds := range m.levels {
		mark := " "
		if st, ok := m.stats[i+1]; ok && st.Wins > 0 {
			mark = "*"
		}
		line := fmt.Sprintf("L%d %3d rounds %s", i+1, rounds, mark)

		list.WriteString("\n")
		if i == m.levelCursor {
			list.WriteString(sbActiveStyle.Render("> " + line))
		} else {
			list.WriteString("  " + line)
		}
	}

	return sbBoxStyle.Width(sidebarWidth).Render(list.String())
}

// renderLevelTabs renders the level tabs of the narrow layout, or just
// the current level when the tabs do not fit.
func (m ScoreboardModel) renderLevelTabs() string {
	tabs := make([]string, len(m.levels))
	for i := range m.levels {
		name := fmt.Sprintf("L%d", i+1)
		if i == m.levelCursor {
			tabs[i] = sbActiveTab.Render(name)
		} else {
			tabs[i] = sbTabStyle.Render(name)
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.levelTitle(m.levelCursor))
	}
	return line
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return sbEmptyStyle.Render("No games on this level yet.\nPlay one to set a high score!")
	}
	return m.table.View()
}

// levelTitle names the level at index i.
func (m ScoreboardModel) levelTitle(i int) string {
	return fmt.Sprintf("Level %d (%d rounds)", i+1, m.levels[i])
}

// statsLine summarizes the selected level.
func (m ScoreboardModel) statsLine() string {
	st, ok := m.stats[m.levelCursor+1]
	if !ok || st.GamesCount == 0 {
		return "no games played"
	}
	return fmt.Sprintf("games: %d  wins: %d (%.0f%%)  best: %d  avg: %.1f",
		st.GamesCount, st.Wins, st.WinRate()*100, st.HighScore, st.AvgScore)
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
func RunScoreboard(store *storage.Store, gameID string, levels []int, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, gameID, levels, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
